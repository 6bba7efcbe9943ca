package counter

import (
	"log/slog"
	"sort"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// Frequency maps each distinct token to the number of times it occurred.
type Frequency map[string]int

// WordFrequency is a single entry of a Frequency, used for ordered output.
type WordFrequency struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Options tunes how WordCountWithOptions normalizes tokens.
type Options struct {
	// Stem folds each token to its lowercase English stem before counting,
	// so "Fishing" and "fished" share the entry "fish".
	Stem bool
}

// isTokenSeparator reports whether r separates two tokens.
// Newlines are whitespace, so "a,\nb" and "a,b" split the same way.
func isTokenSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ','
}

// Tokenize splits text into maximal runs of characters that are neither
// whitespace nor commas. Empty tokens are never returned.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, isTokenSeparator)
}

// WordCount returns how often each distinct token occurs in text.
// Tokens are compared exactly (case-sensitive). Empty text yields an empty map.
func WordCount(text string) Frequency {
	return WordCountWithOptions(text, Options{})
}

// WordCountWithOptions counts tokens in text after applying opts.
func WordCountWithOptions(text string, opts Options) Frequency {
	tokens := Tokenize(text)
	freq := make(Frequency, len(tokens))

	for _, token := range tokens {
		if opts.Stem {
			token = stem(token)
		}
		freq[token]++
	}

	slog.Debug("Word frequency calculated", "tokens", len(tokens), "distinct", len(freq), "stem", opts.Stem)
	return freq
}

// stem lowercases token and reduces it with the English snowball stemmer.
// If stemming fails the lowercased token is used as is.
func stem(token string) string {
	lower := strings.ToLower(token)
	stemmed, err := snowball.Stem(lower, "english", true)
	if err != nil || stemmed == "" {
		slog.Debug("Stemming failed, keeping token", "token", token, "error", err)
		return lower
	}
	return stemmed
}

// Total returns the number of tokens counted.
func (f Frequency) Total() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

// Sorted returns the entries ordered by descending count, ties broken by word.
func (f Frequency) Sorted() []WordFrequency {
	result := make([]WordFrequency, 0, len(f))
	for word, count := range f {
		result = append(result, WordFrequency{Word: word, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Word < result[j].Word
	})
	return result
}

// Top returns at most n entries of Sorted. A non-positive n returns all of them.
func (f Frequency) Top(n int) []WordFrequency {
	sorted := f.Sorted()
	if n <= 0 || n >= len(sorted) {
		return sorted
	}
	return sorted[:n]
}
