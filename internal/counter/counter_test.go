package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordCounter(t *testing.T) {
	counter := NewWordCounter()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty string", "", 0},
		{"single word", "hello", 1},
		{"multiple words", "hello world test", 3},
		{"whitespace handling", "  hello   world  ", 2},
		{"comma separated", "one,two,three", 3},
		{"unicode words", "café naïve résumé", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, counter.Count(tt.text), "WordCounter.Count(%q)", tt.text)
		})
	}

	assert.Equal(t, "words", counter.Name())
}

func TestCharCounter(t *testing.T) {
	counter := NewCharCounter()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty string", "", 0},
		{"single char", "a", 1},
		{"multiple chars", "hello", 5},
		{"unicode chars", "café", 4},
		{"whitespace included", "a b", 3},
		{"emoji", "hello 👋", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, counter.Count(tt.text), "CharCounter.Count(%q)", tt.text)
		})
	}

	assert.Equal(t, "characters", counter.Name())
}

func TestTokenCounter(t *testing.T) {
	counter, err := NewTokenCounter()
	require.NoError(t, err, "failed to create TokenCounter")

	// exact token counts can vary with encoding versions
	assert.Equal(t, 0, counter.Count(""))
	assert.Positive(t, counter.Count("hello world"))
	assert.Positive(t, counter.Count("Hello, world!"))

	assert.Equal(t, "tokens (cl100k_base)", counter.Name())
}

func TestNewCounter(t *testing.T) {
	tests := []struct {
		name         string
		method       CountingMethod
		expectedName string
		expectError  bool
	}{
		{"tokens", Tokens, "tokens (cl100k_base)", false},
		{"words", Words, "words", false},
		{"characters", Characters, "characters", false},
		{"unknown", CountingMethod(42), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter, err := NewCounter(tt.method)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, counter)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, counter.Name())
		})
	}
}

func TestCountingMethodString(t *testing.T) {
	tests := []struct {
		method   CountingMethod
		expected string
	}{
		{Tokens, "tokens"},
		{Words, "words"},
		{Characters, "characters"},
		{CountingMethod(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.method.String())
		})
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize("one fish, two fish")
	require.NoError(t, err)

	assert.Equal(t, 4, s.Words)
	assert.Equal(t, 18, s.Characters)
	assert.Positive(t, s.Tokens)
}
