package login

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/session"
)

// Сообщения BFF
const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCredentialsMissing = "email и пароль обязательны"
)

// Сообщения интерфейса, показываются гостю как есть
const (
	msgLoginFailed = "Login failed"
)

type Handler struct {
	service  SessionService
	wizard   Wizard
	bookings BookingList
	logger   Logger
}

func NewHandler(service SessionService, wizard Wizard, bookings BookingList, logger Logger) *Handler {
	return &Handler{
		service:  service,
		wizard:   wizard,
		bookings: bookings,
		logger:   logger,
	}
}

// Handle POST /api/v1/session/login
// После успешного входа состояние предыдущего пользователя сбрасывается.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /session/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgCredentialsMissing)
		return
	}

	identity, err := h.service.Login(r.Context(), req.Email, req.Password, req.Remember)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrAuthentication):
			h.logger.Warn("POST /session/login - Rejected: email=%s", req.Email)
			handlers.RespondUnauthorized(w, handlers.ErrorDetail(err, session.ErrAuthentication, msgLoginFailed))

		default:
			h.logger.Error("POST /session/login - Failed to login: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.wizard.Reset()
	h.bookings.Clear()

	h.logger.Info("POST /session/login - Logged in: email=%s", identity.Email)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Identity: identity})
}
