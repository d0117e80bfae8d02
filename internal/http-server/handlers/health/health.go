// Package health содержит обработчик проверки живости сервиса.
package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/newsletter-service/internal/http-server/response"
)

// New возвращает обработчик GET /health. Ядро сервиса не затрагивается:
// ответ подтверждает только живость процесса.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.StatusOKWithData(map[string]any{
			"status": "ok",
		}))
	}
}
