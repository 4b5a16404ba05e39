package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/session"
)

// Сообщения BFF
const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

// Сообщения интерфейса, показываются гостю как есть
const (
	msgRegisterFailed = "Registration failed"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/session/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /session/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	identity, err := h.service.Register(r.Context(), req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, session.ErrInvalidInput, msgRegisterFailed))

		case errors.Is(err, session.ErrAuthentication):
			h.logger.Warn("POST /session/register - Rejected: email=%s", req.Email)
			handlers.RespondConflict(w, handlers.ErrorDetail(err, session.ErrAuthentication, msgRegisterFailed))

		default:
			h.logger.Error("POST /session/register - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /session/register - Account created: email=%s", identity.Email)
	handlers.RespondJSON(w, http.StatusCreated, RegisterResponse{
		Identity:         identity,
		PasswordStrength: session.PasswordStrength(req.Password),
	})
}
