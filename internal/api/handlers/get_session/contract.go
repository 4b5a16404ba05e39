package get_session

import (
	"context"

	"github.com/m04kA/SMC-LuxoraClient/internal/service/session"
)

type SessionService interface {
	State(ctx context.Context) session.State
}
