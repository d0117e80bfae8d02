// Package app предоставляет маршруты сервиса рассылки.
package app

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/newsletter-service/internal/http-server/handlers/confirm"
	"github.com/magabrotheeeer/newsletter-service/internal/http-server/handlers/health"
	"github.com/magabrotheeeer/newsletter-service/internal/http-server/handlers/subscribe"
	confirmationservice "github.com/magabrotheeeer/newsletter-service/internal/services/confirmation"
	subscriptionservice "github.com/magabrotheeeer/newsletter-service/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(ctx context.Context, r chi.Router, logger *slog.Logger,
	subscriptionService *subscriptionservice.SubscriptionService,
	confirmationService *confirmationservice.ConfirmationService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Post("/subscriptions", subscribe.New(ctx, logger, subscriptionService))
	r.Get("/subscriptions/confirm", confirm.New(ctx, logger, confirmationService))
	r.Get("/health", health.New())

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
