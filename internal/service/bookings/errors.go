package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирования нет в загруженном списке
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCancelled возвращается при попытке отменить уже отмененное бронирование
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrCannotCancel возвращается, когда backend отклонил отмену
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRefreshFailed возвращается, когда список не удалось загрузить
	ErrRefreshFailed = errors.New("failed to load bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
