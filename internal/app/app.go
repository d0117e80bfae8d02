// Package app собирает сервис рассылки: хранилище, миграции, почтовый
// клиент, сервисы и HTTP-сервер с корректной остановкой.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/newsletter-service/internal/config"
	"github.com/magabrotheeeer/newsletter-service/internal/emailclient"
	"github.com/magabrotheeeer/newsletter-service/internal/lib/token"
	"github.com/magabrotheeeer/newsletter-service/internal/migrations"
	confirmationservice "github.com/magabrotheeeer/newsletter-service/internal/services/confirmation"
	subscriptionservice "github.com/magabrotheeeer/newsletter-service/internal/services/subscription"
	"github.com/magabrotheeeer/newsletter-service/internal/storage"
)

// App держит HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New инициализирует приложение: подключение к базе, миграции,
// клиент почтового API, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}
	if err = storage.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	emailClient := emailclient.New(cfg.EmailClient)

	subscriptionService := subscriptionservice.NewSubscriptionService(
		db, emailClient, token.Generator{}, cfg.BaseURL, cfg.SenderAddress, logger)
	confirmationService := confirmationservice.NewConfirmationService(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(ctx, router, logger, subscriptionService, confirmationService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
