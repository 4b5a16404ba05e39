package rooms

import (
	"context"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
)

// RoomsClient интерфейс адаптера каталога номеров
type RoomsClient interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	InitSampleRooms(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
