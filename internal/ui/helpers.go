package ui

import "strings"

// truncate trims value to limit runes, replacing the tail with an ellipsis.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

// plural picks the singular or plural form for a count.
func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
