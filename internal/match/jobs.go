// Package match finds jobs that overlap a search filter or a
// candidate's profile. Skill comparisons here are plain case-insensitive
// containment, not the fuzzy matching used for candidate scoring.
package match

import (
	"sort"
	"strings"

	"github.com/hrscout/hrscout/internal/corpus"
	"github.com/hrscout/hrscout/internal/query"
)

// Recommendation pairs a job with how well a candidate fits it.
type Recommendation struct {
	Job           corpus.Job `json:"job"`
	MatchScore    int        `json:"matchScore"`
	MatchedSkills []string   `json:"matchedSkills"`
	LocationMatch bool       `json:"locationMatch"`
}

// maxRecommendations caps how many jobs are suggested per candidate.
const maxRecommendations = 3

// FindMatchingJobs returns the jobs compatible with the filter. A job
// matches when its location equals the filter location (if one is set)
// and at least one filter skill overlaps one required skill (if any
// skills are set). With no location and no skills, every job matches.
func FindMatchingJobs(f query.Filter, jobs []corpus.Job) []corpus.Job {
	var matching []corpus.Job

	for _, job := range jobs {
		if f.Location != "" && !strings.EqualFold(job.Location, f.Location) {
			continue
		}
		if len(f.Skills) > 0 && !skillsOverlap(f.Skills, job.SkillsRequired) {
			continue
		}
		matching = append(matching, job)
	}
	return matching
}

func skillsOverlap(filterSkills, jobSkills []string) bool {
	for _, fs := range filterSkills {
		fs = strings.ToLower(fs)
		for _, js := range jobSkills {
			if containsEither(fs, strings.ToLower(js)) {
				return true
			}
		}
	}
	return false
}

// RecommendJobs scores every job against a candidate: one point per
// required skill found among the candidate's skills, plus one point for
// a location match. Jobs scoring zero are dropped; the rest are sorted
// by score (ties keep corpus order) and capped at three.
func RecommendJobs(c corpus.Candidate, jobs []corpus.Job) []Recommendation {
	candidateSkills := lowerAll(c.Skills)
	candidateLocation := strings.ToLower(c.Location)

	var recommendations []Recommendation
	for _, job := range jobs {
		score := 0
		var matched []string

		for _, js := range job.SkillsRequired {
			jsLower := strings.ToLower(js)
			for _, cs := range candidateSkills {
				if containsEither(jsLower, cs) {
					score++
					matched = append(matched, jsLower)
					break
				}
			}
		}

		locationMatch := strings.ToLower(job.Location) == candidateLocation
		if locationMatch {
			score++
		}

		if score == 0 {
			continue
		}

		recommendations = append(recommendations, Recommendation{
			Job:           job,
			MatchScore:    score,
			MatchedSkills: matched,
			LocationMatch: locationMatch,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func lowerAll(list []string) []string {
	out := make([]string, len(list))
	for i, item := range list {
		out[i] = strings.ToLower(item)
	}
	return out
}
