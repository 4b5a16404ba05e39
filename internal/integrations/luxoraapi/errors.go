package luxoraapi

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport возвращается, когда запрос не удалось выполнить (сеть, DNS, отмена контекста)
	ErrTransport = errors.New("luxoraapi client: transport error")

	// ErrRequestRejected возвращается, когда backend ответил не 2xx статусом
	ErrRequestRejected = errors.New("luxoraapi client: request rejected")

	// ErrInvalidResponse возвращается при некорректном ответе от backend
	ErrInvalidResponse = errors.New("luxoraapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("luxoraapi client: internal error")

	// ErrSeedingDisabled возвращается при попытке заполнить тестовые данные в production
	ErrSeedingDisabled = errors.New("luxoraapi client: sample data seeding is disabled in production")
)

// RequestError ошибка backend с HTTP статусом, телом ответа и сообщением для пользователя
type RequestError struct {
	Status  int
	Body    any
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return ErrRequestRejected
}

// newRequestError извлекает сообщение из поля detail или message,
// иначе использует "Request failed (<status>)"
func newRequestError(status int, isJSON bool, body any) *RequestError {
	fallback := fmt.Sprintf("Request failed (%d)", status)
	msg := fallback

	if isJSON {
		if obj, ok := body.(map[string]any); ok {
			if detail, ok := obj["detail"].(string); ok {
				msg = detail
			} else if message, ok := obj["message"].(string); ok {
				msg = message
			}
		}
	} else if text, ok := body.(string); ok && text != "" {
		msg = text
	}

	return &RequestError{Status: status, Body: body, Message: msg}
}

// MessageOf возвращает сообщение для отображения:
// сообщение backend для отклоненного запроса, иначе fallback
func MessageOf(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}

// StatusOf возвращает HTTP статус отклоненного запроса или 0
func StatusOf(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Status
	}
	return 0
}
