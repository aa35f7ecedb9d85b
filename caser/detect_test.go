package caser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Convention
	}{
		// No signal
		{name: "empty", input: "", want: ConventionUnknown},
		{name: "whitespace only", input: "   ", want: ConventionUnknown},
		{name: "symbols only", input: "@#$%", want: ConventionUnknown},

		// Separator-driven
		{name: "snake", input: "user_id", want: ConventionSnake},
		{name: "constant", input: "USER_ID", want: ConventionConstant},
		{name: "kebab", input: "already-kebab-case", want: ConventionKebab},
		{name: "train", input: "My-Variable-Name", want: ConventionTrain},
		{name: "dot", input: "camel.case.text", want: ConventionDot},
		{name: "title", input: "First Name", want: ConventionTitle},
		{name: "lowercase sentence has no convention", input: "first name", want: ConventionUnknown},

		// Case-driven
		{name: "camel", input: "myVariableName", want: ConventionCamel},
		{name: "pascal", input: "UserProfile", want: ConventionPascal},
		{name: "single capitalized word", input: "User", want: ConventionPascal},
		{name: "single lowercase word", input: "user", want: ConventionCamel},
		{name: "all caps word", input: "HTML", want: ConventionConstant},

		// Ambiguous mixes
		{name: "mixed case with underscores", input: "user_Id", want: ConventionUnknown},
		{name: "uppercase kebab", input: "USER-ID", want: ConventionUnknown},
		{name: "cased dot path", input: "com.Example.api", want: ConventionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.input)
			assert.Equal(t, tt.want, got, "Detect(%q)", tt.input)
		})
	}
}

// TestDetect_RoundTrip verifies that converting to a convention and
// detecting it again agrees, for inputs with at least two words.
func TestDetect_RoundTrip(t *testing.T) {
	input := "someVariable nameWith_parts"

	for _, c := range []Convention{
		ConventionCamel, ConventionPascal, ConventionSnake,
		ConventionKebab, ConventionDot, ConventionConstant,
		ConventionTrain, ConventionTitle,
	} {
		converted := c.ConvertString(input)
		assert.Equal(t, c, Detect(converted), "Detect(%q)", converted)
	}
}
