package handlers

import (
	"errors"
	"strings"
)

// ErrorDetail возвращает текст ошибки после префикса sentinel ("sentinel: detail").
// Если детали нет, возвращается fallback.
func ErrorDetail(err, sentinel error, fallback string) string {
	if err == nil || !errors.Is(err, sentinel) {
		return fallback
	}
	prefix := sentinel.Error() + ": "
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return fallback
	}
	detail := strings.TrimSpace(strings.TrimPrefix(msg, prefix))
	if detail == "" {
		return fallback
	}
	return detail
}
