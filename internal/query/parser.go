// Package query turns a recruiter's free-text request into a
// structured Filter. Parsing is a fixed sequence of independent regex
// passes over the lower-cased text; each pass either sets its field or
// leaves it absent, and no pass ever fails. The same text always
// produces the same Filter.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hrscout/hrscout/internal/skills"
)

var (
	// A "frontend developer" phrase is both a role and an implied
	// skill set, so it is handled before the generic role table.
	frontendRolePattern = regexp.MustCompile(`front\s*-?\s*end\s+dev(eloppe?r)?`)

	// Ordered by specificity: the first matching pattern wins.
	rolePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(intern|internship)\b`),
		regexp.MustCompile(`\b(junior|entry.level|graduate)\b`),
		regexp.MustCompile(`\b(senior|lead|principal|architect)\b`),
		regexp.MustCompile(`\b(full.?stack|fullstack)\b`),
		regexp.MustCompile(`\b(frontend developer|frontend developper|front.?end|frontend)\b`),
		regexp.MustCompile(`\b(backend|back.end)\b`),
		regexp.MustCompile(`\b(developer|engineer|programmer)\b`),
	}

	skillsPattern = regexp.MustCompile(`\b(react|reactjs|javascript|js|python|py|java|node\.?js|nodejs|angular|vue|css|css3|html|html5|sql|db|dbms|mongodb|postgresql|docker|kubernetes|aws|azure|gcp|typescript|php|c\+\+|c#|ruby|go|rust|swift|kotlin|flutter|django|flask|spring|laravel|express|git|redis|elasticsearch|graphql|rest|api|frontend|backend)\b`)

	locationPattern = regexp.MustCompile(`\b(casablanca|rabat|marrakech|fez|tangier|agadir|meknes|oujda|kenitra|tetouan|sale|temara|mohammedia|el jadida|taza|settat|khouribga|beni mellal|nador|berrechid|khemisset|laayoune|paris|london|madrid|barcelona|amsterdam|berlin|rome|milan|new york|san francisco|toronto|montreal|dubai|cairo|tunis|algiers|lagos|nairobi|cape town|johannesburg|sydney|melbourne|tokyo|singapore|mumbai|bangalore|delhi|beijing|shanghai|hong kong|seoul|taipei|bangkok|jakarta|kuala lumpur|manila|ho chi minh|hanoi|istanbul|athens|vienna|prague|warsaw|stockholm|oslo|helsinki|copenhagen|brussels|geneva|zurich|lisbon)\b`)

	expRangePattern  = regexp.MustCompile(`(\d+)[-–—](\d+)\s*years?`)
	expSinglePattern = regexp.MustCompile(`(\d+)\s*years?`)

	availabilityPattern = regexp.MustCompile(`\b(available|this month|immediately|asap|now|soon)\b`)
	nextMonthsPattern   = regexp.MustCompile(`\bnext\s*(\d+)\s*months?\b`)

	// Tried in order; the first pattern that matches sets the limit.
	limitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`top\s*(\d+)`),
		regexp.MustCompile(`first\s*(\d+)`),
		regexp.MustCompile(`(\d+)\s*candidates?`),
	}
)

// frontendSkills and backendSkills expand the meta-tokens produced by
// skill normalization into concrete technologies.
var (
	frontendSkills = []string{"React", "JavaScript", "HTML", "CSS"}
	backendSkills  = []string{"Python", "Node.js", "SQL"}
)

// Parse extracts a Filter from free text. It is total: unmatched
// fields are simply left absent and the limit defaults to 5.
func Parse(text string) Filter {
	lower := strings.ToLower(text)

	var f Filter
	parseRole(lower, &f)
	parseSkills(lower, &f)
	parseLocation(lower, &f)
	parseExperience(lower, &f)
	parseAvailability(lower, &f)
	parseLimit(lower, &f)
	return f
}

func parseRole(lower string, f *Filter) {
	if frontendRolePattern.MatchString(lower) {
		f.Role = "Frontend Developer"
		f.Skills = append(f.Skills, "Frontend")
		f.Skills = append(f.Skills, frontendSkills...)
	}

	for _, pattern := range rolePatterns {
		if match := pattern.FindString(lower); match != "" {
			f.Role = skills.TitleCase(strings.ReplaceAll(match, ".", " "))
			return
		}
	}
}

func parseSkills(lower string, f *Filter) {
	for _, token := range skillsPattern.FindAllString(lower, -1) {
		switch norm := skills.Normalize(token); norm {
		case "Frontend":
			f.Skills = append(f.Skills, frontendSkills...)
		case "Backend":
			f.Skills = append(f.Skills, backendSkills...)
		default:
			f.Skills = append(f.Skills, norm)
		}
	}

	f.Skills = dedupe(f.Skills)
}

func parseLocation(lower string, f *Filter) {
	if match := locationPattern.FindString(lower); match != "" {
		f.Location = skills.TitleCase(match)
	}
}

func parseExperience(lower string, f *Filter) {
	if groups := expRangePattern.FindStringSubmatch(lower); groups != nil {
		minExp, errMin := strconv.Atoi(groups[1])
		maxExp, errMax := strconv.Atoi(groups[2])
		if errMin == nil && errMax == nil {
			f.MinExp, f.MaxExp = &minExp, &maxExp
		}
		return
	}

	if groups := expSinglePattern.FindStringSubmatch(lower); groups != nil {
		exp, err := strconv.Atoi(groups[1])
		if err != nil {
			return
		}
		minExp := exp - 1
		if minExp < 0 {
			minExp = 0
		}
		maxExp := exp + 1
		f.MinExp, f.MaxExp = &minExp, &maxExp
	}
}

func parseAvailability(lower string, f *Filter) {
	if availabilityPattern.MatchString(lower) {
		window := 45
		f.AvailabilityWindowDays = &window
		return
	}

	if groups := nextMonthsPattern.FindStringSubmatch(lower); groups != nil {
		months, err := strconv.Atoi(groups[1])
		if err != nil {
			return
		}
		window := months * 30
		f.AvailabilityWindowDays = &window
	}
}

func parseLimit(lower string, f *Filter) {
	limit := DefaultLimit
	f.Limit = &limit
	for _, pattern := range limitPatterns {
		if groups := pattern.FindStringSubmatch(lower); groups != nil {
			if n, err := strconv.Atoi(groups[1]); err == nil {
				f.Limit = &n
				return
			}
		}
	}
}

func dedupe(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(list))
	out := list[:0]
	for _, item := range list {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
