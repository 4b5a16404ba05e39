package register

import (
	"context"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/session"
)

type SessionService interface {
	Register(ctx context.Context, in session.RegisterInput) (*domain.Identity, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
