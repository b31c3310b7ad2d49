package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrscout/hrscout/internal/corpus"
	"github.com/hrscout/hrscout/internal/query"
)

// fixedNow keeps availability scoring deterministic.
var fixedNow = time.Date(2026, time.March, 1, 10, 30, 0, 0, time.UTC)

func newTestEngine(candidates []corpus.Candidate, jobs []corpus.Job) *Engine {
	return &Engine{
		candidates: candidates,
		jobs:       jobs,
		now:        func() time.Time { return fixedNow },
	}
}

func intPtr(v int) *int { return &v }

func TestSearchReturnsAtMostLimit(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "A"}, {FirstName: "B"}, {FirstName: "C"}, {FirstName: "D"},
	}
	engine := newTestEngine(candidates, nil)

	assert.Len(t, engine.Search(query.Filter{Limit: intPtr(2)}), 2)
	assert.Len(t, engine.Search(query.Filter{Limit: intPtr(10)}), 4)
	assert.Len(t, engine.Search(query.Filter{Limit: intPtr(5)}), 4)

	// An unset limit falls back to the default, an explicit zero does not.
	assert.Len(t, engine.Search(query.Filter{}), 4)
	assert.Empty(t, engine.Search(query.Filter{Limit: intPtr(0)}))
}

func TestSearchHonorsParsedZeroLimit(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "A"}, {FirstName: "B"}, {FirstName: "C"},
	}
	engine := newTestEngine(candidates, nil)

	for _, text := range []string{"top 0 candidates", "top 1 candidates", "top 9 candidates"} {
		f := query.Parse(text)
		want := f.EffectiveLimit()
		if want > len(candidates) {
			want = len(candidates)
		}
		assert.Len(t, engine.Search(f), want, "query %q", text)
	}
}

func TestSearchIncludesZeroScoreCandidates(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "Omar", Skills: []string{"Rust"}},
	}
	engine := newTestEngine(candidates, nil)

	results := engine.Search(query.Filter{Skills: []string{"React"}, Limit: intPtr(5)})
	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].Score)
	assert.Equal(t, "Partial or general match → score 0", results[0].Reason)
}

func TestSearchDirectSkillMatch(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "Amina", Skills: []string{"React", "JavaScript"}},
	}
	engine := newTestEngine(candidates, nil)

	results := engine.Search(query.Filter{Skills: []string{"React", "js"}, Limit: intPtr(5)})
	require.Len(t, results, 1)
	assert.Equal(t, 4.0, results[0].Score)
	assert.Equal(t, "React+Javascript match (+4) → score 4", results[0].Reason)
}

func TestSearchFuzzyPrefixBucket(t *testing.T) {
	// "Golang" vs "Go": not a fuzzy match (length 2 blocks the pairwise
	// check, no containment of "golang" in "go") — but "go" is a
	// substring of "golang", so containment does match. Use a pair
	// where only the 3-char prefix agrees.
	candidates := []corpus.Candidate{
		{FirstName: "Sara", Skills: []string{"Postgres"}},
	}
	engine := newTestEngine(candidates, nil)

	results := engine.Search(query.Filter{Skills: []string{"PostScript"}, Limit: intPtr(5)})
	require.Len(t, results, 1)
	assert.Equal(t, 1.0, results[0].Score)
	assert.Equal(t, "Fuzzy skill match: Postscript (+1) → score 1", results[0].Reason)
}

func TestSearchSkillLandsInOneBucketOnly(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "Nadia", Skills: []string{"Python"}},
	}
	engine := newTestEngine(candidates, nil)

	results := engine.Search(query.Filter{Skills: []string{"Python"}, Limit: intPtr(5)})
	require.Len(t, results, 1)
	assert.Equal(t, 2.0, results[0].Score, "exact match scores +2, not +3")
}

func TestSearchLocationScoring(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "Exact", Location: "Casablanca"},
		{FirstName: "Partial", Location: "Greater Casablanca Area"},
		{FirstName: "Miss", Location: "Oslo"},
	}
	engine := newTestEngine(candidates, nil)

	results := engine.Search(query.Filter{Location: "Casablanca", Limit: intPtr(5)})
	require.Len(t, results, 3)

	assert.Equal(t, "Exact", results[0].Candidate.FirstName)
	assert.Equal(t, 1.0, results[0].Score)
	assert.Contains(t, results[0].Reason, "Location: Casablanca (exact match, +1)")

	assert.Equal(t, "Partial", results[1].Candidate.FirstName)
	assert.Equal(t, 0.5, results[1].Score)
	assert.Contains(t, results[1].Reason, "Location: partial match (+0.5)")

	assert.Equal(t, "Miss", results[2].Candidate.FirstName)
	assert.Equal(t, 0.0, results[2].Score)
	assert.Contains(t, results[2].Reason, "Location: not matched")
}

func TestSearchExperienceScoring(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "In", ExperienceYears: 4},   // within [min-1, max+1]
		{FirstName: "Near", ExperienceYears: 7}, // within [min-2, max+2]
		{FirstName: "Out", ExperienceYears: 12},
	}
	engine := newTestEngine(candidates, nil)

	f := query.Filter{MinExp: intPtr(3), MaxExp: intPtr(5), Limit: intPtr(5)}
	results := engine.Search(f)
	require.Len(t, results, 3)

	assert.Equal(t, "In", results[0].Candidate.FirstName)
	assert.Contains(t, results[0].Reason, "Experience: 4y (in range, +1)")
	assert.Equal(t, "Near", results[1].Candidate.FirstName)
	assert.Contains(t, results[1].Reason, "Experience: 7y (near range, +0.5)")
	assert.Equal(t, "Out", results[2].Candidate.FirstName)
	assert.Contains(t, results[2].Reason, "Experience: 12y (not matched)")
}

func TestSearchAvailabilityScoring(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "Now", AvailabilityDate: "2026-03-05"},     // 4 days out
		{FirstName: "Month", AvailabilityDate: "2026-03-25"},   // 24 days out
		{FirstName: "Soon", AvailabilityDate: "2026-04-10"},    // 40 days out
		{FirstName: "Quarter", AvailabilityDate: "2026-05-15"}, // 75 days out
		{FirstName: "Late", AvailabilityDate: "2026-09-01"},
		{FirstName: "Broken", AvailabilityDate: "not-a-date"},
	}
	engine := newTestEngine(candidates, nil)

	f := query.Filter{AvailabilityWindowDays: intPtr(45), Limit: intPtr(10)}
	results := engine.Search(f)
	require.Len(t, results, 6)

	byName := make(map[string]Result, len(results))
	for _, r := range results {
		byName[r.Candidate.FirstName] = r
	}

	assert.Equal(t, 1.0, byName["Now"].Score)
	assert.Contains(t, byName["Now"].Reason, "Available immediately (+1)")

	assert.Equal(t, 1.0, byName["Month"].Score)
	assert.Contains(t, byName["Month"].Reason, "Available this month (+1)")

	assert.Equal(t, 1.0, byName["Soon"].Score)
	assert.Contains(t, byName["Soon"].Reason, "Available soon (+1)")

	assert.Equal(t, 0.5, byName["Quarter"].Score)
	assert.Contains(t, byName["Quarter"].Reason, "Available within 3 months (+0.5)")

	assert.Equal(t, 0.0, byName["Late"].Score)
	assert.Contains(t, byName["Late"].Reason, "Availability not matched")

	// Bad dates degrade silently: no score, no availability reason.
	assert.Equal(t, 0.0, byName["Broken"].Score)
	assert.Equal(t, "Partial or general match → score 0", byName["Broken"].Reason)
}

func TestSearchJobSkillBonus(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "Amina", Skills: []string{"React", "CSS"}},
	}
	jobs := []corpus.Job{
		{Title: "Frontend", Location: "Casablanca", SkillsRequired: []string{"css", "react"}},
	}
	engine := newTestEngine(candidates, jobs)

	results := engine.Search(query.Filter{Skills: []string{"CSS"}, Limit: intPtr(5)})
	require.Len(t, results, 1)
	// +2 for the direct CSS match. The job bonus compares the
	// lower-cased required skill against the title-cased normalized
	// candidate skill with case-sensitive containment, so "css" vs
	// "Css" earns nothing here.
	assert.Equal(t, 2.0, results[0].Score)
}

func TestSearchTieBreakByFirstName(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "Zineb", Skills: []string{"Python"}},
		{FirstName: "Adam", Skills: []string{"Python"}},
		{FirstName: "Mona", Skills: []string{"Python"}},
	}
	engine := newTestEngine(candidates, nil)

	results := engine.Search(query.Filter{Skills: []string{"Python"}, Limit: intPtr(5)})
	require.Len(t, results, 3)
	assert.Equal(t, "Adam", results[0].Candidate.FirstName)
	assert.Equal(t, "Mona", results[1].Candidate.FirstName)
	assert.Equal(t, "Zineb", results[2].Candidate.FirstName)
}

func TestSearchHalfPointScoresRankCorrectly(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "Half", Location: "Casablanca Settat"},
		{FirstName: "Full", Location: "Casablanca"},
	}
	engine := newTestEngine(candidates, nil)

	results := engine.Search(query.Filter{Location: "Casablanca", Limit: intPtr(5)})
	require.Len(t, results, 2)
	assert.Equal(t, "Full", results[0].Candidate.FirstName)
	assert.Equal(t, 1.0, results[0].Score)
	assert.Equal(t, "Half", results[1].Candidate.FirstName)
	assert.Equal(t, 0.5, results[1].Score)
	assert.Contains(t, results[1].Reason, "score 0.5")
}

func TestSearchAttachesRecommendations(t *testing.T) {
	candidates := []corpus.Candidate{
		{FirstName: "Amina", Skills: []string{"React"}, Location: "Casablanca"},
	}
	jobs := []corpus.Job{
		{Title: "Frontend Developer", Location: "Casablanca", SkillsRequired: []string{"React"}},
	}
	engine := newTestEngine(candidates, jobs)

	results := engine.Search(query.Filter{Limit: intPtr(5)})
	require.Len(t, results, 1)
	require.Len(t, results[0].RecommendedJobs, 1)
	rec := results[0].RecommendedJobs[0]
	assert.Equal(t, "Frontend Developer", rec.Job.Title)
	assert.Equal(t, 2, rec.MatchScore)
	assert.True(t, rec.LocationMatch)
}
