package luxoraapi

import (
	"context"
	"time"
)

// CredentialStore источник bearer токена. Читается при каждом запросе.
type CredentialStore interface {
	Credential(ctx context.Context) (string, bool, error)
	SetCredential(ctx context.Context, token string) error
}

// MetricsRecorder учет запросов к backend
type MetricsRecorder interface {
	ObserveBackendRequest(method, route, status string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
