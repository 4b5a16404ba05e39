package middleware

import (
	"context"
	"time"
)

// HTTPMetrics учет запросов к API
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// SessionChecker состояние сессии для защищенных маршрутов
type SessionChecker interface {
	Loading() bool
	IsAuthenticated(ctx context.Context) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
