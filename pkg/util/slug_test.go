package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple name",
			input:    "Oak Dining Table",
			expected: "oak-dining-table",
		},
		{
			name:     "Mixed case with numbers",
			input:    "Sofa 3-Seater XL",
			expected: "sofa-3-seater-xl",
		},
		{
			name:     "Consecutive separators collapse",
			input:    "Chair   --  & Stool",
			expected: "chair-stool",
		},
		{
			name:     "Leading and trailing symbols stripped",
			input:    "  *Premium* Bed!  ",
			expected: "premium-bed",
		},
		{
			name:     "Only symbols yields empty string",
			input:    "!!! *** $$$",
			expected: "",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{"Oak Dining Table", "Sofa 3-Seater XL", "!!!"}
	for _, input := range inputs {
		first := Slugify(input)
		assert.Equal(t, first, Slugify(first))
	}
}
