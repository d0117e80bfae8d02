// Package subscribe содержит HTTP-обработчик оформления новой подписки.
package subscribe

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/newsletter-service/internal/http-server/response"
	"github.com/magabrotheeeer/newsletter-service/internal/lib/sl"
	"github.com/magabrotheeeer/newsletter-service/internal/models"
)

// SubscribeRequest описывает форму подписки.
type SubscribeRequest struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required"`
}

// Subscriber запускает сценарий оформления подписки.
type Subscriber interface {
	Subscribe(ctx context.Context, name, email string) error
}

// New
// @Summary Оформление новой подписки на рассылку
// @Tags subscriptions
// @Accept  x-www-form-urlencoded
// @Produce json
// @Param   name  formData string true "Имя подписчика"
// @Param   email formData string true "Email подписчика"
// @Success 200 {object} response.Response "Подписка принята, письмо с подтверждением отправлено"
// @Failure 400 {object} response.Response "Ошибка валидации имени или email"
// @Failure 500 {object} response.Response "Отказ хранилища или почтового API"
// @Router /subscriptions [post]
func New(ctx context.Context, log *slog.Logger, subscriber Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.subscribe.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to parse form"))
			return
		}

		req := SubscribeRequest{
			Name:  r.PostFormValue("name"),
			Email: r.PostFormValue("email"),
		}
		log.Info("request form decoded", slog.String("name", req.Name), slog.String("email", req.Email))

		if err := validator.New().Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if err := subscriber.Subscribe(r.Context(), req.Name, req.Email); err != nil {
			var validationErr *models.ValidationError
			if errors.As(err, &validationErr) {
				log.Error("rejected subscription input", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(validationErr.Error()))
				return
			}
			// Детали отказа хранилища или почтового API остаются в логах.
			log.Error("failed to create subscription", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create subscription"))
			return
		}

		log.Info("subscription accepted", slog.String("email", req.Email))
		render.JSON(w, r, response.OK())
	}
}
