package confirm_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/newsletter-service/internal/http-server/handlers/confirm"
	"github.com/magabrotheeeer/newsletter-service/internal/http-server/response"
	"github.com/magabrotheeeer/newsletter-service/internal/storage"
)

type mockConfirmer struct {
	ConfirmFunc func(ctx context.Context, token string) error
	calls       int
}

func (m *mockConfirmer) Confirm(ctx context.Context, token string) error {
	m.calls++
	return m.ConfirmFunc(ctx, token)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func makeLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

func getConfirm(handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestConfirmHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		confirmer := &mockConfirmer{
			ConfirmFunc: func(ctx context.Context, token string) error {
				require.Equal(t, "sometoken", token)
				return nil
			},
		}

		handler := confirm.New(context.Background(), makeLogger(), confirmer)
		w := getConfirm(handler, "/subscriptions/confirm?subscription_token=sometoken")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), response.StatusOK)
		assert.Equal(t, 1, confirmer.calls)
	})

	t.Run("missing token parameter", func(t *testing.T) {
		confirmer := &mockConfirmer{
			ConfirmFunc: func(ctx context.Context, token string) error {
				t.Fatal("service should not be called without a token")
				return nil
			},
		}

		handler := confirm.New(context.Background(), makeLogger(), confirmer)
		w := getConfirm(handler, "/subscriptions/confirm")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "subscription_token is required")
	})

	t.Run("unknown token maps to 401", func(t *testing.T) {
		confirmer := &mockConfirmer{
			ConfirmFunc: func(ctx context.Context, token string) error {
				return storage.ErrTokenNotFound
			},
		}

		handler := confirm.New(context.Background(), makeLogger(), confirmer)
		w := getConfirm(handler, "/subscriptions/confirm?subscription_token=garbage-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "unknown subscription token")
	})

	t.Run("store failure maps to 500 without detail", func(t *testing.T) {
		confirmer := &mockConfirmer{
			ConfirmFunc: func(ctx context.Context, token string) error {
				return errors.New("pq: connection refused on 10.0.0.5")
			},
		}

		handler := confirm.New(context.Background(), makeLogger(), confirmer)
		w := getConfirm(handler, "/subscriptions/confirm?subscription_token=sometoken")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "failed to confirm subscription")
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
