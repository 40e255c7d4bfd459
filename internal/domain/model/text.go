package model

import "strings"

// SameText reports a case-insensitive exact match after trimming.
func SameText(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}

// Matches reports a loose match: case-insensitive substring
// containment in either direction, so "Karachi" matches
// "Karachi, Sindh". Empty strings never match.
func Matches(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchesAny reports whether s loosely matches any entry in list.
func MatchesAny(s string, list []string) bool {
	for _, item := range list {
		if Matches(s, item) {
			return true
		}
	}
	return false
}
