package acronym_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriscorrea/evalkit/internal/acronym"
)

func TestAcronym_Nil(t *testing.T) {
	assert.Nil(t, acronym.Acronym(nil))
}

func TestAcronym(t *testing.T) {
	tests := []struct {
		name     string
		phrase   string
		expected string
	}{
		{"basic", "Portable Network Graphics", "PNG"},
		{"punctuation", "First In, First Out", "FIFO"},
		{"all caps word", "GNU Image Manipulation Program", "GIMP"},
		{"hyphenated words", "Complementary metal-oxide semiconductor", "CMOS"},
		{"lowercase phrase", "as soon as possible", "ASAP"},
		{"apostrophe inside word", "Don't Repeat Yourself", "DRY"},
		{"leading punctuation", "'quoted' words", "QW"},
		{"punctuation-only word skipped", "Ruby on Rails - the framework", "RORTF"},
		{"repeated separators", "  Hyper--Text   Markup\tLanguage ", "HTML"},
		{"empty phrase", "", ""},
		{"only punctuation and whitespace", " , - ! ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrase := tt.phrase
			got := acronym.Acronym(&phrase)
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func ExampleString() {
	fmt.Println(acronym.String("First In, First Out"))
	// Output: FIFO
}
