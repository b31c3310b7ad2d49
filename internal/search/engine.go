// Package search scores every candidate in the corpus against a
// filter and returns the ranked top results. It is a ranking system,
// not a filter: a candidate that matches nothing still appears with a
// zero score, it just sorts last.
package search

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hrscout/hrscout/internal/corpus"
	"github.com/hrscout/hrscout/internal/match"
	"github.com/hrscout/hrscout/internal/query"
	"github.com/hrscout/hrscout/internal/skills"
)

// Result is one ranked candidate with an explanation of its score.
type Result struct {
	Candidate       corpus.Candidate       `json:"candidate"`
	Score           float64                `json:"score"`
	Reason          string                 `json:"reason"`
	Index           int                    `json:"index"`
	RecommendedJobs []match.Recommendation `json:"recommendedJobs"`
}

// Engine ranks candidates over a loaded corpus snapshot. The clock is
// injectable so availability scoring is testable.
type Engine struct {
	candidates []corpus.Candidate
	jobs       []corpus.Job
	now        func() time.Time
}

// New builds an engine over the store's snapshot.
func New(store *corpus.Store) *Engine {
	return &Engine{
		candidates: store.Candidates(),
		jobs:       store.Jobs(),
		now:        time.Now,
	}
}

// Search scores all candidates against the filter, ranks them by
// score descending with first name as the tie-break, and returns at
// most the filter's limit. It never fails.
func (e *Engine) Search(f query.Filter) []Result {
	today := truncateToDate(e.now())
	matchingJobs := match.FindMatchingJobs(f, e.jobs)

	filterSkills := normalizeAll(f.Skills)

	results := make([]Result, 0, len(e.candidates))
	for i, candidate := range e.candidates {
		score, reasons := e.scoreCandidate(candidate, f, filterSkills, matchingJobs, today)

		if len(reasons) == 0 {
			reasons = append(reasons, "Partial or general match")
		}
		reason := strings.Join(reasons, ", ") + " → score " + formatScore(score)

		results = append(results, Result{
			Candidate:       candidate,
			Score:           score,
			Reason:          reason,
			Index:           i,
			RecommendedJobs: match.RecommendJobs(candidate, e.jobs),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Candidate.FirstName < results[j].Candidate.FirstName
	})

	if limit := f.EffectiveLimit(); len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (e *Engine) scoreCandidate(candidate corpus.Candidate, f query.Filter, filterSkills []string, matchingJobs []corpus.Job, today time.Time) (float64, []string) {
	score := 0.0
	var reasons []string

	candidateSkills := normalizeAll(candidate.Skills)

	// Direct and near-miss skill matches. Each filter skill lands in at
	// most one bucket, decided by the first candidate skill that is
	// either a fuzzy match or shares a 3-character prefix.
	var matched, fuzzyMatched []string
	for _, fs := range filterSkills {
		for _, cs := range candidateSkills {
			if skills.FuzzyMatch(strings.ToLower(fs), strings.ToLower(cs)) {
				matched = append(matched, fs)
				break
			}
			if prefix3(fs) == prefix3(cs) {
				fuzzyMatched = append(fuzzyMatched, fs)
				break
			}
		}
	}
	if len(matched) > 0 {
		points := len(matched) * 2
		score += float64(points)
		reasons = append(reasons, fmt.Sprintf("%s match (+%d)", displayList(matched), points))
	}
	if len(fuzzyMatched) > 0 {
		points := len(fuzzyMatched)
		score += float64(points)
		reasons = append(reasons, fmt.Sprintf("Fuzzy skill match: %s (+%d)", displayList(fuzzyMatched), points))
	}

	// One bonus point per required skill of a matching job that the
	// candidate covers.
	jobSkillMatches := 0
	for _, job := range matchingJobs {
		for _, js := range job.SkillsRequired {
			jsLower := strings.ToLower(js)
			for _, cs := range candidateSkills {
				if strings.Contains(cs, jsLower) || strings.Contains(jsLower, cs) {
					jobSkillMatches++
					break
				}
			}
		}
	}
	if jobSkillMatches > 0 {
		score += float64(jobSkillMatches)
		reasons = append(reasons, fmt.Sprintf("Job skills match (+%d)", jobSkillMatches))
	}

	if f.Location != "" {
		candidateLocation := strings.ToLower(candidate.Location)
		filterLocation := strings.ToLower(f.Location)
		switch {
		case candidateLocation == filterLocation:
			score++
			reasons = append(reasons, fmt.Sprintf("Location: %s (exact match, +1)", f.Location))
		case strings.Contains(candidateLocation, filterLocation) || strings.Contains(filterLocation, candidateLocation):
			score += 0.5
			reasons = append(reasons, "Location: partial match (+0.5)")
		default:
			reasons = append(reasons, "Location: not matched")
		}
	}

	if f.MinExp != nil && f.MaxExp != nil {
		exp := candidate.ExperienceYears
		switch {
		case exp >= *f.MinExp-1 && exp <= *f.MaxExp+1:
			score++
			reasons = append(reasons, fmt.Sprintf("Experience: %dy (in range, +1)", exp))
		case exp >= *f.MinExp-2 && exp <= *f.MaxExp+2:
			score += 0.5
			reasons = append(reasons, fmt.Sprintf("Experience: %dy (near range, +0.5)", exp))
		default:
			reasons = append(reasons, fmt.Sprintf("Experience: %dy (not matched)", exp))
		}
	}

	if f.AvailabilityWindowDays != nil && candidate.AvailabilityDate != "" {
		// Unparseable dates contribute nothing, silently.
		if availableAt, err := time.Parse("2006-01-02", candidate.AvailabilityDate); err == nil {
			days := int(availableAt.Sub(today).Hours() / 24)
			window := *f.AvailabilityWindowDays
			switch {
			case days >= 0 && days <= window:
				score++
				switch {
				case days <= 7:
					reasons = append(reasons, "Available immediately (+1)")
				case days <= 30:
					reasons = append(reasons, "Available this month (+1)")
				default:
					reasons = append(reasons, "Available soon (+1)")
				}
			case days >= 0 && days <= 90:
				score += 0.5
				reasons = append(reasons, "Available within 3 months (+0.5)")
			default:
				reasons = append(reasons, "Availability not matched")
			}
		}
	}

	return score, reasons
}

func normalizeAll(list []string) []string {
	out := make([]string, len(list))
	for i, item := range list {
		out[i] = skills.Normalize(item)
	}
	return out
}

// prefix3 returns the first three runes, or the whole string when it
// is shorter.
func prefix3(s string) string {
	runes := []rune(s)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}

func displayList(list []string) string {
	titled := make([]string, len(list))
	for i, item := range list {
		titled[i] = skills.TitleCase(item)
	}
	return strings.Join(titled, "+")
}

// formatScore renders 4.5 as "4.5" and 5.0 as "5".
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
