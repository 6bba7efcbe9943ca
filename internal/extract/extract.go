// Package extract turns HTML documents into plain text for word counting.
package extract

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// PlainText extracts readable text from HTML.
//
// Parameters:
//   - content: io.Reader containing HTML content
//   - selector: optional CSS selector; when set, only matching elements are kept
//   - baseURL: optional URL for context during readability extraction (can be nil)
//
// Without a selector the main article is located with go-readability and its
// text content is returned; navigation, sidebars, and footers are dropped.
func PlainText(content io.Reader, selector string, baseURL *url.URL) (string, error) {
	if selector != "" {
		return extractWithSelector(content, selector)
	}
	return extractMainContent(content, baseURL)
}

func extractMainContent(content io.Reader, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	return normalizeWhitespace(article.TextContent), nil
}

func extractWithSelector(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var parts []string
	selection.Each(func(_ int, s *goquery.Selection) {
		if text := normalizeWhitespace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	return strings.Join(parts, "\n"), nil
}

// normalizeWhitespace trims every line and drops blank ones.
func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
