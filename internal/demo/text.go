package demo

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// capitalize title-cases every word of s and lower-cases the rest of each
// word. Punctuation such as '-' starts a new word.
func capitalize(s string) string {
	return cases.Title(language.Und).String(s)
}
