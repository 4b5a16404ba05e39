package get_bookings

import (
	"context"

	"github.com/m04kA/SMC-LuxoraClient/internal/service/bookings/models"
)

type BookingService interface {
	Refresh(ctx context.Context) error
	Loaded() bool
	List(f models.BookingFilter) *models.BookingListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
