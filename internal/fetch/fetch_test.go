package fetch_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriscorrea/evalkit/internal/fetch"
)

func TestReadText(t *testing.T) {
	tests := []struct {
		name        string
		setupFunc   func(t *testing.T) string
		expectError bool
		expectData  string
	}{
		{
			name: "stdin source",
			setupFunc: func(t *testing.T) string {
				restore := fetch.SetStdin(io.NopCloser(strings.NewReader("one,two,three")))
				t.Cleanup(restore)
				return fetch.StdinSource
			},
			expectData: "one,two,three",
		},
		{
			name: "http URL success",
			setupFunc: func(t *testing.T) string {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "evalkit/0.1", r.Header.Get("User-Agent"))
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte("one fish two fish"))
				}))
				t.Cleanup(server.Close)
				return server.URL
			},
			expectData: "one fish two fish",
		},
		{
			name: "http URL with error status",
			setupFunc: func(t *testing.T) string {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				}))
				t.Cleanup(server.Close)
				return server.URL
			},
			expectError: true,
		},
		{
			name: "local file success",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "words.txt")
				require.NoError(t, os.WriteFile(path, []byte("red fish\nblue fish"), 0o600))
				return path
			},
			expectData: "red fish\nblue fish",
		},
		{
			name: "missing file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.txt")
			},
			expectError: true,
		},
		{
			name: "directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := tt.setupFunc(t)

			got, err := fetch.ReadText(context.Background(), source)
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectData, got)
		})
	}
}

func TestLimitedReader(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		limit    int64
		expected string
		wantErr  bool
	}{
		{"under the limit", "abc", 4, "abc", false},
		{"exactly at the limit", "abcd", 4, "abcd", false},
		{"one byte over", "abcde", 4, "", true},
		{"empty", "", 4, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fetch.NewLimitedReader(io.NopCloser(strings.NewReader(tt.content)), tt.limit, "test")
			got, err := io.ReadAll(r)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "exceeds size limit")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestGetContent_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("too late"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetch.GetContent(ctx, server.URL)
	assert.Error(t, err)
}

func TestIsURL(t *testing.T) {
	assert.True(t, fetch.IsURL("http://example.com"))
	assert.True(t, fetch.IsURL("https://example.com/page"))
	assert.False(t, fetch.IsURL("notes.txt"))
	assert.False(t, fetch.IsURL("-"))
}

func TestStdinIsTerminal_NonFile(t *testing.T) {
	restore := fetch.SetStdin(io.NopCloser(strings.NewReader("")))
	defer restore()

	assert.False(t, fetch.StdinIsTerminal())
}
