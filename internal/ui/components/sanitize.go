package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

var bidiControls = map[rune]struct{}{
	'\u202a': {},
	'\u202b': {},
	'\u202c': {},
	'\u202d': {},
	'\u202e': {},
	'\u2066': {},
	'\u2067': {},
	'\u2068': {},
	'\u2069': {},
	'\u200e': {},
	'\u200f': {},
}

// SanitizeText strips escape sequences, bidi overrides and control
// characters from provider data. Newlines and tabs survive.
func SanitizeText(input string) string {
	if input == "" {
		return input
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if _, ok := bidiControls[r]; ok {
			return -1
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(input))
}

// SanitizeOneLine is SanitizeText with newlines and tabs folded to spaces.
func SanitizeOneLine(input string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		return r
	}, SanitizeText(input))
}
