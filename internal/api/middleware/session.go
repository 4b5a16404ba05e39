package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
)

const (
	msgSessionLoading  = "сессия восстанавливается, повторите запрос"
	msgUnauthenticated = "требуется авторизация"
)

// SessionGuard пропускает только авторизованные запросы.
// Пока сессия восстанавливается при старте, отвечает 503.
func SessionGuard(session SessionChecker, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session.Loading() {
				handlers.RespondUnavailable(w, msgSessionLoading)
				return
			}
			if !session.IsAuthenticated(r.Context()) {
				logger.Warn("%s %s - Unauthenticated request", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthenticated)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
