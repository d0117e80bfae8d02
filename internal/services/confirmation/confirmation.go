// Package services содержит бизнес-логику подтверждения подписки:
// разрешение токена в подписчика и перевод его в статус confirmed.
package services

import (
	"context"
	"fmt"
	"log/slog"
)

// TokenRepository определяет операции хранилища, нужные подтверждению подписки.
type TokenRepository interface {
	// FindSubscriberIDByToken возвращает идентификатор подписчика
	// либо storage.ErrTokenNotFound, если токен неизвестен.
	FindSubscriberIDByToken(ctx context.Context, token string) (string, error)
	// MarkConfirmed переводит подписчика в статус confirmed.
	MarkConfirmed(ctx context.Context, subscriberID string) error
}

// ConfirmationService реализует сценарий подтверждения подписки.
type ConfirmationService struct {
	repo TokenRepository
	log  *slog.Logger
}

// NewConfirmationService создает новый экземпляр ConfirmationService.
func NewConfirmationService(repo TokenRepository, log *slog.Logger) *ConfirmationService {
	return &ConfirmationService{
		repo: repo,
		log:  log,
	}
}

// Confirm разрешает токен в подписчика и помечает его подтверждённым.
// Токен при этом не удаляется и не гасится: повторный переход по той же
// ссылке снова успешен, состояние подписчика не меняется. Неизвестный
// токен возвращается как storage.ErrTokenNotFound, состояние подписчиков
// в этом случае не затрагивается.
func (s *ConfirmationService) Confirm(ctx context.Context, token string) error {
	const op = "services.confirmation.Confirm"

	subscriberID, err := s.repo.FindSubscriberIDByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.MarkConfirmed(ctx, subscriberID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("subscriber confirmed", slog.String("subscriber_id", subscriberID))

	return nil
}
