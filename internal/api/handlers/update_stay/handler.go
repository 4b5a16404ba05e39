package update_stay

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStay        = "некорректные даты или количество гостей"
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

// Handle PATCH /api/v1/wizard/stay
// Проверка доступности запускается в фоне после debounce, результат читается через GET /wizard.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateStayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /wizard/stay - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.wizard.UpdateStay(req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, booking_wizard.ErrCapacityExceeded):
			// гости сохранены, сообщение уже в состоянии
			handlers.RespondJSON(w, http.StatusOK, state)

		case errors.Is(err, booking_wizard.ErrInvalidGuests):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, booking_wizard.ErrInvalidGuests, msgInvalidStay))

		case errors.Is(err, booking_wizard.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, booking_wizard.ErrInvalidInput, msgInvalidStay))

		default:
			h.logger.Error("PATCH /wizard/stay - Failed to update stay: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, state)
}
