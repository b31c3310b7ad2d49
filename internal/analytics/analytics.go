// Package analytics produces read-only rollups over the corpus:
// pipeline stage counts, skill supply and demand, and the gap between
// them. Everything is re-derivable from the snapshot at any time.
package analytics

import (
	"encoding/json"
	"sort"

	"github.com/hrscout/hrscout/internal/corpus"
)

const (
	topSkillsLimit = 10
	gapLimit       = 5
	unknownValue   = "Unknown"
)

// SkillCount is one entry of a frequency ranking.
type SkillCount struct {
	Skill string
	Count int
}

// MarshalJSON renders the entry as a ["skill", count] pair, the shape
// report consumers destructure.
func (sc SkillCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{sc.Skill, sc.Count})
}

// JobStats summarizes the demand side of the corpus.
type JobStats struct {
	TotalJobs         int            `json:"totalJobs"`
	LocationBreakdown map[string]int `json:"locationBreakdown"`
	SkillsDemand      map[string]int `json:"skillsDemand"`
}

// SkillsAnalysis compares demanded skills against available ones.
type SkillsAnalysis struct {
	InDemand []string `json:"inDemand"`
	Gap      []string `json:"gap"`
	Surplus  []string `json:"surplus"`
}

// Report is the full analytics summary.
type Report struct {
	CountByStage   map[string]int `json:"countByStage"`
	TopSkills      []SkillCount   `json:"topSkills"`
	JobStats       JobStats       `json:"jobStats"`
	SkillsAnalysis SkillsAnalysis `json:"skillsAnalysis"`
}

// Summarize builds the report over a corpus snapshot. It never fails
// and mutates nothing.
func Summarize(candidates []corpus.Candidate, jobs []corpus.Job) Report {
	stages := newCounter()
	candidateSkills := newCounter()
	for _, c := range candidates {
		stages.add(orUnknown(c.Stage))
		for _, skill := range c.Skills {
			candidateSkills.add(skill)
		}
	}

	jobLocations := newCounter()
	demandedSkills := newCounter()
	for _, j := range jobs {
		jobLocations.add(orUnknown(j.Location))
		for _, skill := range j.SkillsRequired {
			demandedSkills.add(skill)
		}
	}

	topDemand := demandedSkills.mostCommon(topSkillsLimit)
	inDemand := make([]string, 0, gapLimit)
	demandMap := make(map[string]int, len(topDemand))
	for _, entry := range topDemand {
		demandMap[entry.Skill] = entry.Count
		if len(inDemand) < gapLimit {
			inDemand = append(inDemand, entry.Skill)
		}
	}

	return Report{
		CountByStage: stages.counts,
		TopSkills:    candidateSkills.mostCommon(topSkillsLimit),
		JobStats: JobStats{
			TotalJobs:         len(jobs),
			LocationBreakdown: jobLocations.counts,
			SkillsDemand:      demandMap,
		},
		SkillsAnalysis: SkillsAnalysis{
			InDemand: inDemand,
			Gap:      truncate(difference(demandedSkills.order, candidateSkills.counts), gapLimit),
			Surplus:  truncate(difference(candidateSkills.order, demandedSkills.counts), gapLimit),
		},
	}
}

// counter tracks frequencies while remembering first-seen order, so
// ranking ties resolve deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) mostCommon(n int) []SkillCount {
	ranked := make([]SkillCount, 0, len(c.order))
	for _, key := range c.order {
		ranked = append(ranked, SkillCount{Skill: key, Count: c.counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// difference keeps the entries of keys that are absent from exclude,
// preserving order.
func difference(keys []string, exclude map[string]int) []string {
	var out []string
	for _, key := range keys {
		if _, ok := exclude[key]; !ok {
			out = append(out, key)
		}
	}
	return out
}

func truncate(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func orUnknown(s string) string {
	if s == "" {
		return unknownValue
	}
	return s
}
