package booking_wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
)

// AvailabilityClient интерфейс проверки доступности
type AvailabilityClient interface {
	CheckAvailability(ctx context.Context, query luxoraapi.AvailabilityQuery) (*domain.Availability, error)
}

// BookingClient интерфейс создания бронирования
type BookingClient interface {
	CreateBooking(ctx context.Context, payload luxoraapi.CreateBookingPayload) (*luxoraapi.CreatedBooking, error)
}

// BookingsRefresher список бронирований, который перезагружается после создания
type BookingsRefresher interface {
	Refresh(ctx context.Context) error
}

// MetricsRecorder учет исходов проверок доступности
type MetricsRecorder interface {
	IncAvailabilityCheck(outcome string)
}

// Timer отложенная задача
type Timer interface {
	Stop() bool
}

// Scheduler откладывает выполнение задачи (для тестирования)
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealScheduler планировщик на time.AfterFunc
type RealScheduler struct{}

// AfterFunc запускает f в отдельной горутине через d
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type nopMetrics struct{}

func (nopMetrics) IncAvailabilityCheck(string) {}
