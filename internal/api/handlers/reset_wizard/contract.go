package reset_wizard

import "github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"

type Wizard interface {
	Reset() booking_wizard.State
}
