// Package models содержит доменные типы рассылки: подписчика, его статусы,
// валидированные имя и email, а также ошибки валидации.
package models

import (
	"fmt"
	"time"
)

// Статусы подписчика. Переход только pending_confirmation -> confirmed,
// обратного перехода нет.
const (
	StatusPendingConfirmation = "pending_confirmation"
	StatusConfirmed           = "confirmed"
)

// Subscriber представляет запись подписчика рассылки.
type Subscriber struct {
	ID           string
	Name         SubscriberName
	Email        SubscriberEmail
	Status       string
	SubscribedAt time.Time
}

// ValidationError описывает отклонённое пользовательское поле.
// Является клиентской ошибкой: запись не создаётся, письмо не отправляется.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}
