package update_contact

import "github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"

type Wizard interface {
	UpdateContact(in booking_wizard.ContactInput) (booking_wizard.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
