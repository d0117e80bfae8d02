package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/newsletter-service/internal/lib/token"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	var gen token.Generator

	got := gen.Generate()
	require.Len(t, got, token.Length)

	for _, c := range got {
		isUpper := c >= 'A' && c <= 'Z'
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		assert.True(t, isUpper || isLower || isDigit, "unexpected character %q", string(c))
	}
}

func TestGenerate_Unique(t *testing.T) {
	var gen token.Generator

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		tok := gen.Generate()
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %s", tok)
		seen[tok] = struct{}{}
	}
}
