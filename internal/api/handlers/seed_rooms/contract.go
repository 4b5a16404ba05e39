package seed_rooms

import (
	"context"

	"github.com/m04kA/SMC-LuxoraClient/internal/service/rooms"
)

type RoomsService interface {
	Seed(ctx context.Context) error
	Catalog(f rooms.RoomFilter) rooms.Catalog
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
