// Package api exposes the search core over a small JSON HTTP surface.
// Routing is deliberately thin: every endpoint decodes a request,
// calls one core operation and encodes the result.
package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/hrscout/hrscout/internal/corpus"
	"github.com/hrscout/hrscout/internal/search"
)

// Server routes API requests to the search core.
type Server struct {
	store  *corpus.Store
	engine *search.Engine
	logger *zap.Logger
	mux    *http.ServeMux
}

// New builds a server over a loaded corpus.
func New(store *corpus.Store, logger *zap.Logger) *Server {
	s := &Server{
		store:  store,
		engine: search.New(store),
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /api/parse_query", s.handleParseQuery)
	s.mux.HandleFunc("POST /api/search", s.handleSearch)
	s.mux.HandleFunc("GET /api/shortlists", s.handleGetShortlists)
	s.mux.HandleFunc("POST /api/shortlists", s.handleSaveShortlist)
	s.mux.HandleFunc("GET /api/shortlists/{name}", s.handleShortlistCandidates)
	s.mux.HandleFunc("GET /api/analytics", s.handleAnalytics)
	s.mux.HandleFunc("POST /api/email", s.handleDraftEmail)

	// Browser clients send a preflight before every POST.
	s.mux.HandleFunc("OPTIONS /", s.handlePreflight)
}

// Handler returns the routing handler; exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Listen serves the API until the listener fails.
func (s *Server) Listen(addr string) error {
	s.logger.Info("api server listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.mux)
}

func writeCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func (s *Server) handlePreflight(w http.ResponseWriter, _ *http.Request) {
	writeCORSHeaders(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	writeCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
