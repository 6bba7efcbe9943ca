// Package scrabble scores words using the standard English Scrabble tile values.
package scrabble

import (
	"log/slog"
	"unicode"
)

// letterValues maps each uppercase letter to its tile value.
// It is built once and only read afterwards, so Score is safe for concurrent use.
var letterValues = buildLetterValues(map[int]string{
	1:  "AEIOULNSTR",
	2:  "DG",
	3:  "BCMP",
	4:  "FHVWY",
	5:  "K",
	8:  "JX",
	10: "QZ",
})

func buildLetterValues(groups map[int]string) map[rune]int {
	values := make(map[rune]int, 26)
	for points, letters := range groups {
		for _, r := range letters {
			values[r] = points
		}
	}
	return values
}

// Score returns the sum of the tile values of the letters in word.
// Matching is case-insensitive and an empty word scores 0.
// Characters outside A-Z score 0; the input is expected to be letters only.
func Score(word string) int {
	total := 0
	for _, r := range word {
		total += LetterValue(r)
	}

	slog.Debug("Scrabble score calculated", "word", word, "score", total)
	return total
}

// LetterValue returns the tile value of r, or 0 if r is not an English letter.
func LetterValue(r rune) int {
	return letterValues[unicode.ToUpper(r)]
}
