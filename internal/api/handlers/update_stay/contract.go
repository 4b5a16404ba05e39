package update_stay

import "github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"

type Wizard interface {
	UpdateStay(in booking_wizard.StayInput) (booking_wizard.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
