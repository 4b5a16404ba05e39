package session

import "errors"

var (
	// ErrAuthentication возвращается, когда backend отклонил вход или регистрацию
	ErrAuthentication = errors.New("authentication failed")

	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
