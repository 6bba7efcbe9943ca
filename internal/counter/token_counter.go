package counter

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// tokenEncoding is the tiktoken vocabulary behind --summary token totals.
const tokenEncoding = "cl100k_base"

// TokenCounter counts model tokens rather than words.
type TokenCounter struct {
	mu  sync.RWMutex // guards enc
	enc *tiktoken.Tiktoken
}

// NewTokenCounter loads the cl100k_base vocabulary.
func NewTokenCounter() (Counter, error) {
	enc, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		return nil, fmt.Errorf("load %s vocabulary: %w", tokenEncoding, err)
	}
	slog.Debug("Token vocabulary loaded", "encoding", tokenEncoding)
	return &TokenCounter{enc: enc}, nil
}

// Count reports how many tokens text encodes to. Safe for concurrent use.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	tc.mu.RLock()
	n := len(tc.enc.Encode(text, nil, nil))
	tc.mu.RUnlock()

	slog.Debug("Tokens counted", "bytes", len(text), "tokens", n)
	return n
}

func (tc *TokenCounter) Name() string {
	return "tokens (" + tokenEncoding + ")"
}
