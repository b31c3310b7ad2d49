// Package corpus owns the resident candidate/job data set and the
// persisted shortlists. Candidates and jobs are read-only after Load;
// candidates and jobs are identified by their position in the loaded
// sequence, so the slices are never reordered.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	candidatesFile = "candidates.json"
	jobsFile       = "jobs.json"
	shortlistsFile = "shortlists.json"
)

var (
	// ErrMissingData indicates a required corpus file is absent.
	ErrMissingData = errors.New("corpus data file is missing")
	// ErrBadData indicates a corpus file exists but cannot be parsed.
	ErrBadData = errors.New("corpus data file is malformed")
)

// Candidate is a single profile from candidates.json.
type Candidate struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Skills           []string `json:"skills"`
	Location         string   `json:"location"`
	ExperienceYears  int      `json:"experienceYears"`
	AvailabilityDate string   `json:"availabilityDate,omitempty"`
	Stage            string   `json:"stage"`
}

// Job is a single open position from jobs.json.
type Job struct {
	Title          string   `json:"title"`
	Location       string   `json:"location"`
	SkillsRequired []string `json:"skillsRequired"`
}

// Store holds the loaded corpus. The shortlist map is the only mutable
// part and is guarded by mu; everything else is a read-only snapshot.
type Store struct {
	dir        string
	candidates []Candidate
	jobs       []Job

	mu         sync.RWMutex
	shortlists map[string][]int
}

// Load reads candidates.json and jobs.json from dir. Both are
// required. shortlists.json is optional; its absence means no saved
// shortlists yet.
func Load(dir string) (*Store, error) {
	s := &Store{
		dir:        dir,
		shortlists: make(map[string][]int),
	}

	if err := readJSONFile(filepath.Join(dir, candidatesFile), &s.candidates); err != nil {
		return nil, fmt.Errorf("loading candidates: %w", err)
	}
	if err := readJSONFile(filepath.Join(dir, jobsFile), &s.jobs); err != nil {
		return nil, fmt.Errorf("loading jobs: %w", err)
	}

	shortlistsPath := filepath.Join(dir, shortlistsFile)
	if _, err := os.Stat(shortlistsPath); err == nil {
		if err := readJSONFile(shortlistsPath, &s.shortlists); err != nil {
			return nil, fmt.Errorf("loading shortlists: %w", err)
		}
	}

	return s, nil
}

func readJSONFile(path string, out any) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMissingData, path)
		}
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBadData, path, err)
	}
	return nil
}

// Candidates returns the loaded candidate snapshot.
func (s *Store) Candidates() []Candidate {
	return s.candidates
}

// Jobs returns the loaded job snapshot.
func (s *Store) Jobs() []Job {
	return s.jobs
}

// Candidate returns the candidate at the given corpus index.
func (s *Store) Candidate(idx int) (Candidate, bool) {
	if idx < 0 || idx >= len(s.candidates) {
		return Candidate{}, false
	}
	return s.candidates[idx], true
}

// FullName renders a candidate's display name.
func (c Candidate) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
