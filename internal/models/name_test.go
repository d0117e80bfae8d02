package models_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/newsletter-service/internal/models"
)

func TestParseSubscriberName_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "simple name", raw: "Ursula Le Guin"},
		{name: "lowercase name", raw: "le guin"},
		{name: "name with apostrophe", raw: "O'Brien"},
		{name: "unicode name", raw: "Фёдор Достоевский"},
		{name: "name with surrounding spaces", raw: "  le guin  "},
		{name: "exactly 256 graphemes", raw: strings.Repeat("a", 256)},
		{name: "256 combining-sequence graphemes", raw: strings.Repeat("a̐", 256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.ParseSubscriberName(tt.raw)
			require.NoError(t, err)
			// Исходная строка сохраняется без изменений.
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestParseSubscriberName_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "tab and newline only", raw: "\t\n"},
		{name: "257 graphemes", raw: strings.Repeat("a", 257)},
		{name: "257 combining-sequence graphemes", raw: strings.Repeat("a̐", 257)},
		{name: "forward slash", raw: "https://example.com"},
		{name: "backslash", raw: `back\slash`},
		{name: "parentheses", raw: "name (admin)"},
		{name: "angle brackets", raw: "<script>"},
		{name: "double quote", raw: `"quoted"`},
		{name: "curly braces", raw: "{name}"},
		{name: "comma", raw: "Le Guin, Ursula"},
		{name: "dollar sign", raw: "$name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := models.ParseSubscriberName(tt.raw)
			require.Error(t, err)

			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "name", validationErr.Field)
		})
	}
}

func TestParseSubscriberName_ForbiddenCharsEachRejected(t *testing.T) {
	for _, c := range `/\()<>:";[]{}?*|&#%^~` + "`$=+," {
		_, err := models.ParseSubscriberName("name" + string(c))
		assert.Error(t, err, "character %q must be rejected", string(c))
	}
}
