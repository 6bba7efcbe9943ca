// Package app contains the core application logic for the evalkit CLI tool.
// It resolves input, runs one of the text or search operations, and renders
// the result, keeping all of that separate from CLI concerns.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/chriscorrea/evalkit/internal/acronym"
	"github.com/chriscorrea/evalkit/internal/counter"
	"github.com/chriscorrea/evalkit/internal/extract"
	"github.com/chriscorrea/evalkit/internal/fetch"
	"github.com/chriscorrea/evalkit/internal/reverse"
	"github.com/chriscorrea/evalkit/internal/scrabble"
	"github.com/chriscorrea/evalkit/internal/search"
)

// ErrNoInput is returned when there are no arguments and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass arguments or pipe text on stdin")

// Operation selects which algorithm Run executes.
type Operation int

const (
	Reverse Operation = iota
	Acronym
	Scrabble
	WordCount
	Search
)

// String returns the command name of the operation.
func (o Operation) String() string {
	switch o {
	case Reverse:
		return "reverse"
	case Acronym:
		return "acronym"
	case Scrabble:
		return "scrabble"
	case WordCount:
		return "wordcount"
	case Search:
		return "search"
	default:
		return "unknown"
	}
}

// Config holds all configuration options for a single evalkit run.
type Config struct {
	Operation    Operation
	Args         []string     // positional arguments (text, words, or target + values)
	Sources      []string     // wordcount inputs: file paths, URLs, or "-" for stdin
	OutputFormat OutputFormat // output format (text/json/yaml)
	HTML         bool         // extract text from HTML sources before counting
	Selector     string       // CSS selector used with HTML
	Stem         bool         // fold words to their stems before counting
	Top          int          // only report the N most frequent words (0 = all)
	Summary      bool         // include word/character/token totals
	Quiet        bool         // suppress warnings
	Debug        bool
}

// Run executes the operation named by cfg and returns the rendered output.
// ctx allows cancellation of URL fetches.
func Run(ctx context.Context, cfg Config) (string, error) {
	result, err := execute(ctx, cfg)
	if err != nil {
		return "", err
	}
	return render(result, cfg.OutputFormat)
}

func execute(ctx context.Context, cfg Config) (any, error) {
	switch cfg.Operation {
	case Reverse:
		return runTextTransform(ctx, cfg, reverse.Reverse)
	case Acronym:
		return runTextTransform(ctx, cfg, acronym.Acronym)
	case Scrabble:
		return runScrabble(ctx, cfg)
	case WordCount:
		return runWordCount(ctx, cfg)
	case Search:
		return runSearch(cfg)
	default:
		return nil, fmt.Errorf("unknown operation %d", int(cfg.Operation))
	}
}

// TransformResult is the outcome of reverse and acronym.
type TransformResult struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

func runTextTransform(ctx context.Context, cfg Config, transform func(*string) *string) (TransformResult, error) {
	input, err := argsOrStdin(ctx, cfg.Args)
	if err != nil {
		return TransformResult{}, err
	}

	// input is never absent here, so neither is the output
	out := transform(&input)
	return TransformResult{Input: input, Output: *out}, nil
}

// WordScore pairs a word with its Scrabble score.
type WordScore struct {
	Word  string `json:"word" yaml:"word"`
	Score int    `json:"score" yaml:"score"`
}

// ScrabbleResult lists the score of every word in input order.
type ScrabbleResult struct {
	Words []WordScore `json:"words" yaml:"words"`
	Total int         `json:"total" yaml:"total"`
}

func runScrabble(ctx context.Context, cfg Config) (ScrabbleResult, error) {
	input, err := argsOrStdin(ctx, cfg.Args)
	if err != nil {
		return ScrabbleResult{}, err
	}

	result := ScrabbleResult{Words: []WordScore{}}
	for _, word := range strings.Fields(input) {
		score := scrabble.Score(word)
		result.Words = append(result.Words, WordScore{Word: word, Score: score})
		result.Total += score
	}
	return result, nil
}

// WordCountResult holds word frequencies ordered by count.
type WordCountResult struct {
	Words   []counter.WordFrequency `json:"words" yaml:"words"`
	Summary *counter.Summary        `json:"summary,omitempty" yaml:"summary,omitempty"`
}

func runWordCount(ctx context.Context, cfg Config) (WordCountResult, error) {
	sources := cfg.Sources
	if len(sources) == 0 {
		if fetch.StdinIsTerminal() {
			return WordCountResult{}, ErrNoInput
		}
		sources = []string{fetch.StdinSource}
	}

	text, err := extractAndCombineContent(ctx, sources, cfg)
	if err != nil {
		return WordCountResult{}, err
	}

	freq := counter.WordCountWithOptions(text, counter.Options{Stem: cfg.Stem})
	result := WordCountResult{Words: freq.Top(cfg.Top)}

	if cfg.Summary {
		summary, err := counter.Summarize(text)
		if err != nil {
			return WordCountResult{}, fmt.Errorf("failed to summarize: %w", err)
		}
		result.Summary = &summary
	}
	return result, nil
}

// extractAndCombineContent reads every source and joins their text with blank lines.
// Sources that fail are reported and skipped; an error is returned only when
// none could be read. Sources that read fine but hold no text still count.
func extractAndCombineContent(ctx context.Context, sources []string, cfg Config) (string, error) {
	var combined strings.Builder
	processed := 0

	for _, source := range sources {
		text, err := processSource(ctx, source, cfg)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: failed to process source %q: %v\n", source, err)
			}
			continue
		}
		processed++

		if text == "" {
			continue
		}
		if combined.Len() > 0 {
			combined.WriteString("\n\n")
		}
		combined.WriteString(text)
	}

	if processed == 0 {
		return "", fmt.Errorf("no content extracted from any source")
	}
	return combined.String(), nil
}

func processSource(ctx context.Context, source string, cfg Config) (string, error) {
	if !cfg.HTML {
		return fetch.ReadText(ctx, source)
	}

	reader, err := fetch.GetContent(ctx, source)
	if err != nil {
		return "", fmt.Errorf("failed to fetch content: %w", err)
	}
	defer reader.Close()

	var baseURL *url.URL
	if fetch.IsURL(source) {
		baseURL, _ = url.Parse(source) // nil on parse errors is fine
	}

	text, err := extract.PlainText(reader, cfg.Selector, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}
	return text, nil
}

// SearchResult reports where Target was found; Index is search.NotFound when absent.
type SearchResult struct {
	Target string `json:"target" yaml:"target"`
	Index  int    `json:"index" yaml:"index"`
	Found  bool   `json:"found" yaml:"found"`
}

func runSearch(cfg Config) (SearchResult, error) {
	if len(cfg.Args) < 2 {
		return SearchResult{}, fmt.Errorf("search needs a target and at least one sorted value")
	}
	target, values := cfg.Args[0], cfg.Args[1:]

	// the values alone decide the ordering; a non-integer target
	// can never equal an integer value
	var idx int
	if ints, ok := parseInts(values); ok {
		if !slices.IsSorted(ints) {
			return SearchResult{}, fmt.Errorf("values must be sorted in ascending order")
		}
		idx = search.NotFound
		if n, err := strconv.Atoi(target); err == nil {
			idx = search.New(ints).IndexOf(n)
		}
	} else {
		if !slices.IsSorted(values) {
			return SearchResult{}, fmt.Errorf("values must be sorted in ascending order")
		}
		idx = search.New(values).IndexOf(target)
	}

	return SearchResult{Target: target, Index: idx, Found: idx != search.NotFound}, nil
}

// parseInts converts every arg to an int, reporting false if any is not an integer.
func parseInts(args []string) ([]int, bool) {
	ints := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, false
		}
		ints[i] = n
	}
	return ints, true
}

// argsOrStdin joins args with spaces, or reads stdin when there are none.
func argsOrStdin(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if fetch.StdinIsTerminal() {
		return "", ErrNoInput
	}

	text, err := fetch.ReadText(ctx, fetch.StdinSource)
	if err != nil {
		return "", err
	}
	// drop the newline added by echo and friends
	return strings.TrimRight(text, "\r\n"), nil
}
