package create_booking

import (
	"context"

	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
)

type Wizard interface {
	Submit(ctx context.Context) (*booking_wizard.Receipt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
