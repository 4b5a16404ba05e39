package get_wizard

import (
	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
)

type Wizard interface {
	State() booking_wizard.State
	SelectRoomByType(roomType string, rooms []domain.Room) (booking_wizard.State, bool)
}

type RoomsService interface {
	Rooms() []domain.Room
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
