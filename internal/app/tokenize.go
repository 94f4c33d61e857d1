package app

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it into runs of letters and digits.
// Punctuation and whitespace separate tokens; empty input yields no tokens.
// The classifier core treats tokens as opaque — this is only the CLI's text
// front end, and callers feeding non-text token streams bypass it entirely.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
