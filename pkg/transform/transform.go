package transform

import "unicode"

// First returns name with its first rune uppercased and everything else
// untouched. Empty names come back unchanged, as do names whose first rune
// has no distinct uppercase form (digits, punctuation, already-uppercase
// letters); callers treat output == input as "no rename needed".
func First(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToTitle(runes[0])
	return string(runes)
}
