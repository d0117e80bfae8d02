package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/newsletter-service/internal/models"
)

func TestParseSubscriberEmail_Valid(t *testing.T) {
	tests := []string{
		"user@example.com",
		"ursula_le_guin@gmail.com",
		"first.last@sub.example.org",
		"user+tag@example.com",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			got, err := models.ParseSubscriberEmail(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, got.String())
		})
	}
}

func TestParseSubscriberEmail_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "not an email", raw: "not-an-email"},
		{name: "missing local part", raw: "@domain.com"},
		{name: "missing domain", raw: "user@"},
		{name: "missing at sign", raw: "user.example.com"},
		{name: "spaces inside", raw: "user name@example.com"},
		{name: "double at sign", raw: "user@@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := models.ParseSubscriberEmail(tt.raw)
			require.Error(t, err)

			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "email", validationErr.Field)
		})
	}
}
