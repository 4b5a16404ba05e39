package select_room

import (
	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
)

type Wizard interface {
	SelectRoom(room domain.Room) (booking_wizard.State, error)
}

type RoomsService interface {
	FindByID(id int64) (*domain.Room, error)
	FindByType(roomType string) (*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
