package booking_wizard

import "errors"

var (
	// ErrNoRoomSelected возвращается, когда номер не выбран
	ErrNoRoomSelected = errors.New("booking_wizard: no room selected")

	// ErrInvalidInput возвращается при некорректных данных (например, формат даты)
	ErrInvalidInput = errors.New("booking_wizard: invalid input data")

	// ErrInvalidGuests возвращается, когда гостей меньше одного
	ErrInvalidGuests = errors.New("booking_wizard: invalid guests count")

	// ErrCapacityExceeded возвращается, когда гостей больше, чем вмещает номер
	ErrCapacityExceeded = errors.New("booking_wizard: guests exceed room capacity")

	// ErrNotAvailable возвращается при отправке без подтвержденной доступности
	ErrNotAvailable = errors.New("booking_wizard: room is not available for the selected range")

	// ErrContactRequired возвращается, когда не заполнены имя или email
	ErrContactRequired = errors.New("booking_wizard: guest name and email are required")

	// ErrSubmitInProgress возвращается при повторной отправке до завершения предыдущей
	ErrSubmitInProgress = errors.New("booking_wizard: submission already in progress")

	// ErrBookingRejected возвращается, когда backend отклонил бронирование
	ErrBookingRejected = errors.New("booking_wizard: booking rejected")

	// ErrInvalidStage возвращается при отправке не с шага данных гостя
	ErrInvalidStage = errors.New("booking_wizard: invalid stage")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_wizard: internal error")
)

// Сообщения для отображения
const (
	msgSelectRoom      = "Please select a room first."
	msgNotAvailable    = "Please choose valid dates. This room is not available for the selected range."
	msgContactRequired = "Please enter your name and email."
	msgGuestDetails    = "Please review your guest details before confirming."
	msgBookingFailed   = "Booking failed. Please try again."
	msgCheckFailed     = "Availability check failed"
	msgGuestsAtLeast   = "Guests must be at least 1"
	msgMaxGuests       = "Max guests for this room is %d"
)
