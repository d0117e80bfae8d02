package models

import (
	"strings"

	"github.com/rivo/uniseg"
)

// maxNameGraphemes ограничивает длину имени в видимых символах
// (графемных кластерах), а не в байтах или рунах.
const maxNameGraphemes = 256

// forbiddenNameChars — символы, запрещённые в имени подписчика.
const forbiddenNameChars = "/\\()<>:\";[]{}?*|&#%^~`$=+,"

// SubscriberName хранит проверенное отображаемое имя подписчика.
// Исходная строка сохраняется как есть, без обрезки пробелов.
type SubscriberName struct {
	value string
}

// ParseSubscriberName проверяет сырое имя и возвращает SubscriberName
// либо *ValidationError. Функция тотальна: любой вход либо принимается,
// либо отклоняется с конкретной причиной.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	if strings.TrimSpace(raw) == "" {
		return SubscriberName{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if uniseg.GraphemeClusterCount(raw) > maxNameGraphemes {
		return SubscriberName{}, &ValidationError{Field: "name", Reason: "must not exceed 256 characters"}
	}
	if strings.ContainsAny(raw, forbiddenNameChars) {
		return SubscriberName{}, &ValidationError{Field: "name", Reason: "contains a forbidden character"}
	}
	return SubscriberName{value: raw}, nil
}

// String возвращает исходную строку имени.
func (n SubscriberName) String() string {
	return n.value
}
