package update_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidContact     = "некорректные контактные данные"
)

type Handler struct {
	wizard Wizard
	logger Logger
}

func NewHandler(wizard Wizard, logger Logger) *Handler {
	return &Handler{
		wizard: wizard,
		logger: logger,
	}
}

// Handle PATCH /api/v1/wizard/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req booking_wizard.ContactInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /wizard/contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.wizard.UpdateContact(req)
	if err != nil {
		if errors.Is(err, booking_wizard.ErrInvalidInput) {
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, booking_wizard.ErrInvalidInput, msgInvalidContact))
			return
		}
		h.logger.Error("PATCH /wizard/contact - Failed to update contact: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, state)
}
