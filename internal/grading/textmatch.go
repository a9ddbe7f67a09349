package grading

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// foldEqual compares two strings after full Unicode lowercasing of both,
// including final sigma and the dotted capital I.
func foldEqual(a, b string) bool {
	// a Caser is stateful, so each call gets its own
	lower := cases.Lower(language.Und)
	return lower.String(a) == lower.String(b)
}

// sortedCopy returns a sorted copy of s, leaving s untouched.
func sortedCopy(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
