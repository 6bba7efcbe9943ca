package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat defines the output format for results
type OutputFormat int

const (
	// plaintext output format (default)
	Text OutputFormat = iota
	// JSON output format
	JSON
	// YAML output format
	YAML
)

// String returns the string representation of the output
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "Text"
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	default:
		return "Unknown"
	}
}

// render formats result; structured formats marshal the result types directly.
func render(result any, format OutputFormat) (string, error) {
	switch format {
	case JSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode JSON: %w", err)
		}
		return string(data) + "\n", nil
	case YAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("failed to encode YAML: %w", err)
		}
		return string(data), nil
	case Text:
		return renderText(result), nil
	default:
		return "", fmt.Errorf("unknown output format %d", int(format))
	}
}

func renderText(result any) string {
	var b strings.Builder

	switch r := result.(type) {
	case TransformResult:
		b.WriteString(r.Output)
		b.WriteByte('\n')
	case ScrabbleResult:
		for _, ws := range r.Words {
			fmt.Fprintf(&b, "%s\t%d\n", ws.Word, ws.Score)
		}
		if len(r.Words) > 1 {
			fmt.Fprintf(&b, "total\t%d\n", r.Total)
		}
	case WordCountResult:
		for _, wf := range r.Words {
			fmt.Fprintf(&b, "%s\t%d\n", wf.Word, wf.Count)
		}
		if r.Summary != nil {
			fmt.Fprintf(&b, "\nwords: %d\ncharacters: %d\ntokens: %d\n",
				r.Summary.Words, r.Summary.Characters, r.Summary.Tokens)
		}
	case SearchResult:
		if r.Found {
			fmt.Fprintf(&b, "%d\n", r.Index)
		} else {
			fmt.Fprintf(&b, "%s not found\n", r.Target)
		}
	default:
		fmt.Fprintf(&b, "%v\n", r)
	}

	return b.String()
}
