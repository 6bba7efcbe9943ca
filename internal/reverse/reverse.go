// Package reverse reverses the character order of text.
//
// Reversal works on Unicode code points, so multi-byte characters survive
// intact; only their order changes. An absent value (nil) is passed through
// unchanged rather than treated as an error.
//
// Usage Example:
//
//	s := "robot"
//	out := reverse.Reverse(&s)
//	// *out == "tobor"
package reverse

import "log/slog"

// Reverse returns a new string holding the characters of s in reverse order.
// A nil input yields a nil result and an empty input yields an empty result.
func Reverse(s *string) *string {
	if s == nil {
		slog.Debug("Reverse called with absent input")
		return nil
	}

	reversed := String(*s)
	return &reversed
}

// String reverses s without the optional wrapper.
func String(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
