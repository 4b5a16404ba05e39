package bookings

import (
	"context"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
)

// BookingsClient интерфейс адаптера бронирований Luxora API
type BookingsClient interface {
	GetBookings(ctx context.Context) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
