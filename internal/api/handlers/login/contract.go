package login

import (
	"context"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
)

type SessionService interface {
	Login(ctx context.Context, email, password string, remember bool) (*domain.Identity, error)
}

// Wizard сбрасывает незавершенное бронирование предыдущего пользователя
type Wizard interface {
	Reset() booking_wizard.State
}

// BookingList забывает список бронирований предыдущего пользователя
type BookingList interface {
	Clear()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
