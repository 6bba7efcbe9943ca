package counter

import "fmt"

// Summary holds document totals in every supported unit.
type Summary struct {
	Words      int `json:"words" yaml:"words"`
	Characters int `json:"characters" yaml:"characters"`
	Tokens     int `json:"tokens" yaml:"tokens"`
}

// Summarize counts text with each CountingMethod.
func Summarize(text string) (Summary, error) {
	var s Summary
	for _, method := range []CountingMethod{Words, Characters, Tokens} {
		c, err := NewCounter(method)
		if err != nil {
			return Summary{}, fmt.Errorf("failed to create %s counter: %w", method, err)
		}

		n := c.Count(text)
		switch method {
		case Words:
			s.Words = n
		case Characters:
			s.Characters = n
		case Tokens:
			s.Tokens = n
		}
	}
	return s, nil
}
