package skills

import (
	"strings"
	"unicode"
)

// synonyms maps common spellings and abbreviations to a canonical
// display form. Lookups are done on the lower-cased, trimmed token.
var synonyms = map[string]string{
	"js":       "JavaScript",
	"nodejs":   "Node.js",
	"node.js":  "Node.js",
	"py":       "Python",
	"reactjs":  "React",
	"frontend": "Frontend",
	"backend":  "Backend",
	"sql":      "SQL",
	"db":       "Database",
	"dbms":     "Database",
	"html5":    "HTML",
	"css3":     "CSS",
}

// Normalize canonicalizes a raw skill token. Known synonyms resolve to
// their canonical form; anything else is title-cased.
func Normalize(skill string) string {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := synonyms[skill]; ok {
		return canonical
	}
	return TitleCase(skill)
}

// TitleCase upper-cases the first letter of every alphabetic run and
// lower-cases the rest, so "new york" becomes "New York" and "node.js"
// becomes "Node.Js".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
