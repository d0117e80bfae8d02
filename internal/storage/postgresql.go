// Package storage реализует хранилище данных на основе PostgreSQL
// для подписчиков рассылки и их токенов подтверждения.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/newsletter-service/internal/models"
)

// ErrTokenNotFound возвращается, когда токен подтверждения неизвестен хранилищу.
// Отличается от прочих ошибок хранилища: это клиентская ситуация, а не отказ базы.
var ErrTokenNotFound = errors.New("confirmation token not found")

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с подписчиками и токенами подтверждения.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных: таблица подписчиков
// должна существовать после применения миграций.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'subscriptions'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table subscriptions missing or query error: %w", err)
	}
	return nil
}

// InsertPendingSubscriber вставляет нового подписчика со статусом
// pending_confirmation. Уникальность email намеренно не требуется:
// повторная подписка создаёт независимую ожидающую запись.
func (s *Storage) InsertPendingSubscriber(ctx context.Context, sub models.Subscriber) error {
	const op = "storage.InsertPendingSubscriber"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (id, email, name, status, subscribed_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := s.DB.ExecContext(ctx, query,
		sub.ID, sub.Email.String(), sub.Name.String(), sub.Status, sub.SubscribedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// AssociateToken связывает токен подтверждения с подписчиком.
// Токен выдаётся один раз и никогда не переназначается.
func (s *Storage) AssociateToken(ctx context.Context, subscriberID, token string) error {
	const op = "storage.AssociateToken"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscription_tokens (subscription_token, subscriber_id)
			  VALUES ($1, $2)`
	_, err := s.DB.ExecContext(ctx, query, token, subscriberID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FindSubscriberIDByToken возвращает идентификатор подписчика по токену.
// Неизвестный токен — ErrTokenNotFound.
func (s *Storage) FindSubscriberIDByToken(ctx context.Context, token string) (string, error) {
	const op = "storage.FindSubscriberIDByToken"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT subscriber_id FROM subscription_tokens WHERE subscription_token = $1`
	var subscriberID string
	err := s.DB.QueryRowContext(ctx, query, token).Scan(&subscriberID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", op, ErrTokenNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return subscriberID, nil
}

// MarkConfirmed переводит подписчика в статус confirmed. Повторный вызов
// для уже подтверждённого подписчика успешен: UPDATE идемпотентен.
func (s *Storage) MarkConfirmed(ctx context.Context, subscriberID string) error {
	const op = "storage.MarkConfirmed"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions SET status = $1 WHERE id = $2`
	result, err := s.DB.ExecContext(ctx, query, models.StatusConfirmed, subscriberID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: subscriber %s does not exist", op, subscriberID)
	}
	return nil
}
