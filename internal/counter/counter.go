// Package counter provides word frequency counting and text totals for evalkit.
//
// The central operation is WordCount, which splits free text on runs of
// whitespace and commas and tallies every distinct token. Tokens are compared
// exactly, so "Fish" and "fish" are different words unless stemming is
// requested through WordCountWithOptions.
//
// Usage Example:
//
//	freq := counter.WordCount("one fish two fish")
//	// freq["fish"] == 2
//
// The package also keeps a small family of Counter implementations (words,
// characters, and tiktoken tokens) behind a single interface so callers can
// report document totals with whichever unit they prefer.
package counter

import "fmt"

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (tokens, words, or characters) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// CountingMethod represents the different available counting strategies.
type CountingMethod int

const (
	// Tokens uses tiktoken with cl100k_base encoding
	Tokens CountingMethod = iota
	// Words counts tokens produced by Tokenize
	Words
	// Characters counts individual characters including whitespace
	Characters
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Tokens:
		return "tokens"
	case Words:
		return "words"
	case Characters:
		return "characters"
	default:
		return "unknown"
	}
}

// NewCounter creates a new Counter instance based on the specified method.
// Returns an error if the counter cannot be initialized (e.g., tiktoken encoding fails).
func NewCounter(method CountingMethod) (Counter, error) {
	switch method {
	case Tokens:
		return NewTokenCounter()
	case Words:
		return NewWordCounter(), nil
	case Characters:
		return NewCharCounter(), nil
	default:
		return nil, fmt.Errorf("unknown counting method %d", int(method))
	}
}
