package skills

import "strings"

// FuzzyMatch reports whether two lower-cased strings are close enough
// to be treated as the same skill. Callers must lower-case both inputs.
//
// The rules, in order: exact equality, substring containment in either
// direction, and for strings longer than 3 runes whose lengths differ
// by at most one, a pairwise character comparison over the shorter
// length tolerating a single mismatch. The last rule is deliberately
// not an edit distance: there is no alignment, so an insertion shifts
// every following character. Changing it to Levenshtein would change
// which skills are considered equivalent.
func FuzzyMatch(a, b string) bool {
	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	ra, rb := []rune(a), []rune(b)
	diff := len(ra) - len(rb)
	if diff < 0 {
		diff = -diff
	}
	if len(ra) > 3 && len(rb) > 3 && diff <= 1 {
		short := len(ra)
		if len(rb) < short {
			short = len(rb)
		}
		mismatches := 0
		for i := 0; i < short; i++ {
			if ra[i] != rb[i] {
				mismatches++
			}
		}
		if mismatches <= 1 {
			return true
		}
	}

	return false
}
