package counter

import (
	"log/slog"
	"unicode/utf8"
)

// WordCounter counts words using the same tokenizer as WordCount,
// so "one,two" is two words.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return &WordCounter{}
}

func (wc *WordCounter) Count(text string) int {
	n := len(Tokenize(text))
	slog.Debug("Word count calculated", "textLength", len(text), "wordCount", n)
	return n
}

func (wc *WordCounter) Name() string {
	return "words"
}

// CharCounter counts Unicode characters (runes), not bytes.
type CharCounter struct{}

// NewCharCounter creates a new CharCounter instance.
func NewCharCounter() Counter {
	return &CharCounter{}
}

func (cc *CharCounter) Count(text string) int {
	n := utf8.RuneCountInString(text)
	slog.Debug("Character count calculated", "textLength", len(text), "charCount", n)
	return n
}

func (cc *CharCounter) Name() string {
	return "characters"
}
