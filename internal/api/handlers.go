package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hrscout/hrscout/internal/analytics"
	"github.com/hrscout/hrscout/internal/corpus"
	"github.com/hrscout/hrscout/internal/email"
	"github.com/hrscout/hrscout/internal/query"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleParseQuery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.writeJSON(w, http.StatusOK, query.Parse(req.Query))
}

// handleSearch runs a search either from pre-built filters or from a
// free-text query. Filters win when both are present.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Filters map[string]any `json:"filters"`
		Query   string         `json:"query"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var filter query.Filter
	if req.Filters != nil {
		if err := decodeFilters(req.Filters, &filter); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid filters")
			return
		}
	} else {
		filter = query.Parse(req.Query)
	}

	results := s.engine.Search(filter)
	s.logger.Debug("search handled",
		zap.Int("results", len(results)),
		zap.String("query", req.Query),
	)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"filters":    filter,
		"candidates": results,
		"count":      len(results),
	})
}

func (s *Server) handleGetShortlists(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Shortlists())
}

func (s *Server) handleSaveShortlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name             string `json:"name"`
		CandidateIndices []int  `json:"candidate_indices"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "shortlist name is required")
		return
	}

	saved := s.store.SaveShortlist(req.Name, req.CandidateIndices)
	if saved {
		s.logger.Info("shortlist saved",
			zap.String("name", req.Name),
			zap.Int("candidates", len(req.CandidateIndices)),
		)
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": saved})
}

func (s *Server) handleShortlistCandidates(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if _, ok := s.store.Shortlists()[name]; !ok {
		s.writeError(w, http.StatusNotFound, "shortlist not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"name":       name,
		"candidates": s.store.ShortlistCandidates(name),
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, _ *http.Request) {
	report := analytics.Summarize(s.store.Candidates(), s.store.Jobs())
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleDraftEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CandidateIndices []int  `json:"candidate_indices"`
		JobTitle         string `json:"job_title"`
		Tone             string `json:"tone"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var recipients []corpus.Candidate
	for _, idx := range req.CandidateIndices {
		if c, ok := s.store.Candidate(idx); ok {
			recipients = append(recipients, c)
		}
	}
	if len(recipients) == 0 {
		s.writeError(w, http.StatusBadRequest, "no valid candidate indices")
		return
	}

	msg := email.Draft(recipients, req.JobTitle, req.Tone)
	s.writeJSON(w, http.StatusOK, map[string]string{
		"subject": msg.Subject,
		"text":    msg.Text,
		"html":    email.HTML(msg),
	})
}
