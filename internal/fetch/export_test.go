package fetch

import "io"

// SetStdin replaces standard input for the duration of a test.
func SetStdin(r io.ReadCloser) (restore func()) {
	prev := stdin
	stdin = r
	return func() { stdin = prev }
}

// NewLimitedReader exposes the size-limited reader with a custom limit.
func NewLimitedReader(r io.ReadCloser, limit int64, source string) io.ReadCloser {
	return &limitedReadCloser{ReadCloser: r, N: limit, source: source}
}
