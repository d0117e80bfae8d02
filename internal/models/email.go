package models

import (
	"github.com/go-playground/validator"
)

// emailValidator переиспользуется всеми вызовами ParseSubscriberEmail:
// validator.Validate потокобезопасен и кэширует разобранные правила.
var emailValidator = validator.New()

// SubscriberEmail хранит проверенный email-адрес подписчика.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail проверяет синтаксис адреса и возвращает
// SubscriberEmail либо *ValidationError. Грамматика адреса делегирована
// правилу "email" пакета validator; пустая строка, отсутствие "@",
// локальной части или домена отклоняются всегда.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	if err := emailValidator.Var(raw, "required,email"); err != nil {
		return SubscriberEmail{}, &ValidationError{Field: "email", Reason: "is not a valid email address"}
	}
	return SubscriberEmail{value: raw}, nil
}

// String возвращает исходную строку адреса.
func (e SubscriberEmail) String() string {
	return e.value
}
