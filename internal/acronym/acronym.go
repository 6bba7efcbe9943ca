// Package acronym builds acronyms from multi-word phrases.
//
// A phrase is split into words on whitespace and hyphens. Each word
// contributes its first letter, and the collected initials are uppercased
// and joined without a separator. Punctuation such as commas and apostrophes
// never separates words and never contributes an initial.
//
// Usage Example:
//
//	phrase := "Portable Network Graphics"
//	out := acronym.Acronym(&phrase)
//	// *out == "PNG"
package acronym

import (
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Acronym returns the uppercased initials of every word in phrase.
// A nil phrase yields nil. A phrase with no letters yields "".
func Acronym(phrase *string) *string {
	if phrase == nil {
		slog.Debug("Acronym called with absent input")
		return nil
	}

	result := String(*phrase)
	return &result
}

// String builds the acronym for phrase without the optional wrapper.
func String(phrase string) string {
	words := strings.FieldsFunc(phrase, isSeparator)

	var initials strings.Builder
	for _, word := range words {
		// words made only of punctuation are skipped
		if r, ok := firstLetter(word); ok {
			initials.WriteRune(r)
		}
	}

	// cases.Caser keeps state, so one per call
	result := cases.Upper(language.Und).String(initials.String())

	slog.Debug("Acronym built", "words", len(words), "acronym", result)
	return result
}

// isSeparator reports whether r splits two words.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '-'
}

func firstLetter(word string) (rune, bool) {
	for _, r := range word {
		if unicode.IsLetter(r) {
			return r, true
		}
	}
	return 0, false
}
