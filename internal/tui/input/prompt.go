// Package input holds prompt completion helpers.
package input

import "strings"

// Matching returns the suggestions that extend the current input.
// A suggestion equal to the input is not offered again.
func Matching(input string, suggestions []string) []string {
	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		lower := strings.ToLower(s)
		if strings.HasPrefix(lower, prefix) && lower != prefix {
			matches = append(matches, s)
		}
	}
	return matches
}

// Autocomplete returns the first matching suggestion and whether it exists.
func Autocomplete(input string, suggestions []string) (string, bool) {
	matches := Matching(input, suggestions)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}
