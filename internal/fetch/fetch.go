// Package fetch reads evalkit input from standard input, local files, and URLs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// Size limits to prevent memory overload
const (
	MaxFileSizeBytes = 50 * 1024 * 1024  // 50MB limit for files and stdin
	MaxHTTPSizeBytes = 100 * 1024 * 1024 // 100MB limit for HTTP content (may not have Content-Length)
)

// HTTPRequestTimeout bounds a whole URL fetch.
const HTTPRequestTimeout = 30 * time.Second

// userAgent is sent with every HTTP request.
const userAgent = "evalkit/0.1"

// Source kinds understood by GetContent.
const (
	StdinSource = "-"
)

// limitedReadCloser wraps an io.ReadCloser and fails once more than N bytes
// are available. Content of exactly N bytes reads through to EOF.
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // bytes still allowed
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		// limit reached: only an extra byte makes this an error
		var extra [1]byte
		m, err := l.ReadCloser.Read(extra[:])
		if m > 0 {
			return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
		}
		return 0, err
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

// httpClient is shared and safe for concurrent use.
var httpClient = &http.Client{
	Timeout: HTTPRequestTimeout,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: HTTPRequestTimeout / 6,
		}).DialContext,
		TLSHandshakeTimeout:   HTTPRequestTimeout / 6,
		ResponseHeaderTimeout: HTTPRequestTimeout / 2,
		DisableKeepAlives:     true,
	},
}

// stdin is swapped out by tests.
var stdin io.ReadCloser = os.Stdin

// StdinIsTerminal reports whether standard input is an interactive terminal,
// in which case reading it would block waiting for the user.
func StdinIsTerminal() bool {
	f, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// GetContent opens source for reading:
//   - "-" reads from standard input
//   - URLs starting with "http://" or "https://" are fetched via HTTP
//   - everything else is treated as a local file path
//
// The caller must close the returned reader.
func GetContent(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case source == StdinSource:
		return &limitedReadCloser{
			ReadCloser: io.NopCloser(stdin),
			N:          MaxFileSizeBytes,
			source:     "stdin",
		}, nil
	case IsURL(source):
		return fetchURL(ctx, source)
	default:
		return fetchFile(source)
	}
}

// ReadText reads source fully and returns it as a string.
func ReadText(ctx context.Context, source string) (string, error) {
	r, err := GetContent(ctx, source)
	if err != nil {
		return "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", source, err)
	}

	slog.Debug("Source read", "source", source, "bytes", len(data))
	return string(data), nil
}

// IsURL reports whether source is fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func fetchURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %d %s", url, resp.StatusCode, resp.Status)
	}

	if contentLength := resp.Header.Get("Content-Length"); contentLength != "" {
		if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil && size > MaxHTTPSizeBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP content too large (%d bytes > %d bytes limit)", size, MaxHTTPSizeBytes)
		}
	}

	// Content-Length may be missing, so the body is capped as it is read
	return &limitedReadCloser{
		ReadCloser: resp.Body,
		N:          MaxHTTPSizeBytes,
		source:     url,
	}, nil
}

func fetchFile(path string) (io.ReadCloser, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}

	if fileInfo.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), MaxFileSizeBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	return file, nil
}
