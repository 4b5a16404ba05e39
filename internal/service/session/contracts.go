package session

import (
	"context"

	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
)

// AuthClient интерфейс адаптера авторизации Luxora API
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*luxoraapi.LoginResult, error)
	Register(ctx context.Context, req luxoraapi.RegisterRequest) (*luxoraapi.User, error)
	Me(ctx context.Context) (*luxoraapi.User, error)
	Logout(ctx context.Context) error
}

// CredentialStore интерфейс хранилища сессии
type CredentialStore interface {
	Credential(ctx context.Context) (string, bool, error)
	RememberEmail(ctx context.Context, email string) error
	RememberedEmail(ctx context.Context) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
