package change_stage

import (
	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
)

type Wizard interface {
	GoTo(stage domain.Stage) (booking_wizard.State, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
