package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SaveShortlist stores a named shortlist of candidate indices and
// persists the whole shortlist map to shortlists.json. Indices outside
// the corpus are dropped; if none remain, or the write fails, nothing
// is saved and false is returned.
func (s *Store) SaveShortlist(name string, indices []int) bool {
	valid := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(s.candidates) {
			valid = append(valid, idx)
		}
	}
	if len(valid) == 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.shortlists[name]
	s.shortlists[name] = valid

	if err := s.writeShortlistsLocked(); err != nil {
		// Keep the in-memory map consistent with the file on disk.
		if existed {
			s.shortlists[name] = previous
		} else {
			delete(s.shortlists, name)
		}
		return false
	}
	return true
}

// Shortlists returns a copy of the shortlist map.
func (s *Store) Shortlists() map[string][]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]int, len(s.shortlists))
	for name, indices := range s.shortlists {
		out[name] = append([]int(nil), indices...)
	}
	return out
}

// ShortlistCandidates resolves a shortlist into candidates, skipping
// stale indices. An unknown name yields an empty slice.
func (s *Store) ShortlistCandidates(name string) []Candidate {
	s.mu.RLock()
	indices := s.shortlists[name]
	s.mu.RUnlock()

	candidates := make([]Candidate, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(s.candidates) {
			candidates = append(candidates, s.candidates[idx])
		}
	}
	return candidates
}

func (s *Store) writeShortlistsLocked() error {
	file, err := os.OpenFile(filepath.Join(s.dir, shortlistsFile), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(s.shortlists)
}
