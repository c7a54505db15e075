package domain

import "strings"

var forbiddenWords = []string{"awesome", "amazing"}

// ContainsForbidden reports whether s mentions a word cues must never use.
// The check is a case-insensitive substring match.
func ContainsForbidden(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range forbiddenWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
