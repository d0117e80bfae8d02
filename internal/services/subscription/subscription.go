// Package services содержит бизнес-логику оформления новой подписки:
// валидация ввода, сохранение подписчика, выпуск токена подтверждения
// и отправка письма со ссылкой.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/newsletter-service/internal/emailclient"
	"github.com/magabrotheeeer/newsletter-service/internal/lib/sl"
	"github.com/magabrotheeeer/newsletter-service/internal/models"
)

// SubscriberRepository определяет операции хранилища, нужные оформлению подписки.
type SubscriberRepository interface {
	// InsertPendingSubscriber сохраняет подписчика со статусом pending_confirmation.
	InsertPendingSubscriber(ctx context.Context, sub models.Subscriber) error
	// AssociateToken связывает токен подтверждения с подписчиком.
	AssociateToken(ctx context.Context, subscriberID, token string) error
}

// EmailSender описывает отправку одного письма внешним почтовым API.
type EmailSender interface {
	Send(ctx context.Context, msg emailclient.Message) error
}

// TokenGenerator выдаёт токены подтверждения.
type TokenGenerator interface {
	Generate() string
}

// SubscriptionService реализует сценарий оформления подписки.
type SubscriptionService struct {
	repo          SubscriberRepository
	sender        EmailSender
	tokens        TokenGenerator
	baseURL       string
	senderAddress string
	log           *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
// baseURL — внешний адрес сервиса для ссылки подтверждения,
// senderAddress — адрес отправителя писем.
func NewSubscriptionService(repo SubscriberRepository, sender EmailSender, tokens TokenGenerator,
	baseURL, senderAddress string, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:          repo,
		sender:        sender,
		tokens:        tokens,
		baseURL:       baseURL,
		senderAddress: senderAddress,
		log:           log,
	}
}

// Subscribe проводит запрос на подписку по полному сценарию:
// валидация имени и email, сохранение подписчика, выпуск и сохранение
// токена, отправка письма со ссылкой подтверждения.
//
// Ошибка валидации возвращается как *models.ValidationError, при этом
// ничего не сохраняется и не отправляется. Запись подписчика и токена
// завершается до начала отправки письма; отказ отправки не откатывает
// уже сохранённые строки — подписчик остаётся в статусе ожидания.
func (s *SubscriptionService) Subscribe(ctx context.Context, rawName, rawEmail string) error {
	const op = "services.subscription.Subscribe"

	name, err := models.ParseSubscriberName(rawName)
	if err != nil {
		return err
	}
	email, err := models.ParseSubscriberEmail(rawEmail)
	if err != nil {
		return err
	}

	sub := models.Subscriber{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Name:         name,
		Email:        email,
		Status:       models.StatusPendingConfirmation,
		SubscribedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertPendingSubscriber(ctx, sub); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	confirmationToken := s.tokens.Generate()
	if err := s.repo.AssociateToken(ctx, sub.ID, confirmationToken); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("saved pending subscriber", slog.String("subscriber_id", sub.ID))

	link := ConfirmationLink(s.baseURL, confirmationToken)
	msg := emailclient.Message{
		From:    s.senderAddress,
		To:      email.String(),
		Subject: "Welcome to our newsletter!",
		HTMLBody: fmt.Sprintf(
			"Welcome to our newsletter!<br />Click <a href=%q>here</a> to confirm your subscription.", link),
		TextBody: fmt.Sprintf(
			"Welcome to our newsletter!\nVisit %s to confirm your subscription.", link),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.Error("failed to send confirmation email", slog.String("subscriber_id", sub.ID), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("sent confirmation email", slog.String("subscriber_id", sub.ID))

	return nil
}

// ConfirmationLink строит ссылку подтверждения, встраивая токен
// в параметр subscription_token.
func ConfirmationLink(baseURL, token string) string {
	return fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s",
		strings.TrimRight(baseURL, "/"), token)
}
