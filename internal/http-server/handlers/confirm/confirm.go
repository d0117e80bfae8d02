// Package confirm содержит HTTP-обработчик подтверждения подписки по ссылке.
package confirm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/newsletter-service/internal/http-server/response"
	"github.com/magabrotheeeer/newsletter-service/internal/lib/sl"
	"github.com/magabrotheeeer/newsletter-service/internal/storage"
)

// Confirmer запускает сценарий подтверждения подписки.
type Confirmer interface {
	Confirm(ctx context.Context, token string) error
}

// New
// @Summary Подтверждение подписки по токену из письма
// @Tags subscriptions
// @Produce json
// @Param   subscription_token query string true "Токен подтверждения"
// @Success 200 {object} response.Response "Подписка подтверждена"
// @Failure 400 {object} response.Response "Токен отсутствует в запросе"
// @Failure 401 {object} response.Response "Токен не распознан"
// @Failure 500 {object} response.Response "Отказ хранилища"
// @Router /subscriptions/confirm [get]
func New(ctx context.Context, log *slog.Logger, confirmer Confirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.confirm.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		token := r.URL.Query().Get("subscription_token")
		if token == "" {
			log.Error("missing subscription_token query parameter")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("subscription_token is required"))
			return
		}

		if err := confirmer.Confirm(r.Context(), token); err != nil {
			if errors.Is(err, storage.ErrTokenNotFound) {
				log.Error("unknown confirmation token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unknown subscription token"))
				return
			}
			// Детали отказа хранилища остаются в логах.
			log.Error("failed to confirm subscription", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to confirm subscription"))
			return
		}

		log.Info("subscription confirmed")
		render.JSON(w, r, response.OK())
	}
}
