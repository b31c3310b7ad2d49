package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrscout/hrscout/internal/corpus"
	"github.com/hrscout/hrscout/internal/query"
)

var testJobs = []corpus.Job{
	{Title: "Frontend Developer", Location: "Casablanca", SkillsRequired: []string{"React", "JavaScript", "CSS"}},
	{Title: "Backend Engineer", Location: "Rabat", SkillsRequired: []string{"Python", "SQL"}},
	{Title: "Data Engineer", Location: "Casablanca", SkillsRequired: []string{"Python", "Spark"}},
}

func TestFindMatchingJobsNoConstraints(t *testing.T) {
	got := FindMatchingJobs(query.Filter{}, testJobs)
	assert.Len(t, got, 3, "a filter without location or skills matches every job")
}

func TestFindMatchingJobsByLocation(t *testing.T) {
	got := FindMatchingJobs(query.Filter{Location: "casablanca"}, testJobs)
	require.Len(t, got, 2)
	assert.Equal(t, "Frontend Developer", got[0].Title)
	assert.Equal(t, "Data Engineer", got[1].Title)

	// Location matching is exact, never partial.
	got = FindMatchingJobs(query.Filter{Location: "Casa"}, testJobs)
	assert.Empty(t, got)
}

func TestFindMatchingJobsBySkillOverlap(t *testing.T) {
	got := FindMatchingJobs(query.Filter{Skills: []string{"Python"}}, testJobs)
	require.Len(t, got, 2)
	assert.Equal(t, "Backend Engineer", got[0].Title)

	// Substring containment counts in either direction.
	got = FindMatchingJobs(query.Filter{Skills: []string{"Java"}}, testJobs)
	require.Len(t, got, 1)
	assert.Equal(t, "Frontend Developer", got[0].Title)
}

func TestFindMatchingJobsCombined(t *testing.T) {
	got := FindMatchingJobs(query.Filter{Location: "Casablanca", Skills: []string{"SQL"}}, testJobs)
	assert.Empty(t, got, "both constraints must hold")
}

func TestRecommendJobsScoring(t *testing.T) {
	candidate := corpus.Candidate{
		FirstName: "Amina",
		Skills:    []string{"React", "JavaScript", "Python"},
		Location:  "Casablanca",
	}

	got := RecommendJobs(candidate, testJobs)
	require.Len(t, got, 3)

	// Frontend: React + JavaScript + CSS? no CSS, so 2 skills + location.
	assert.Equal(t, "Frontend Developer", got[0].Job.Title)
	assert.Equal(t, 3, got[0].MatchScore)
	assert.Equal(t, []string{"react", "javascript"}, got[0].MatchedSkills)
	assert.True(t, got[0].LocationMatch)

	// Data: Python + location.
	assert.Equal(t, "Data Engineer", got[1].Job.Title)
	assert.Equal(t, 2, got[1].MatchScore)

	// Backend: Python only.
	assert.Equal(t, "Backend Engineer", got[2].Job.Title)
	assert.Equal(t, 1, got[2].MatchScore)
	assert.False(t, got[2].LocationMatch)
}

func TestRecommendJobsExcludesZeroScores(t *testing.T) {
	candidate := corpus.Candidate{FirstName: "Omar", Skills: []string{"Rust"}, Location: "Oslo"}
	assert.Empty(t, RecommendJobs(candidate, testJobs))
}

func TestRecommendJobsStableTieOrderAndCap(t *testing.T) {
	jobs := []corpus.Job{
		{Title: "A", SkillsRequired: []string{"Go"}},
		{Title: "B", SkillsRequired: []string{"Go"}},
		{Title: "C", SkillsRequired: []string{"Go"}},
		{Title: "D", SkillsRequired: []string{"Go"}},
	}
	candidate := corpus.Candidate{Skills: []string{"Go"}}

	got := RecommendJobs(candidate, jobs)
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].Job.Title)
	assert.Equal(t, "B", got[1].Job.Title)
	assert.Equal(t, "C", got[2].Job.Title)
}
