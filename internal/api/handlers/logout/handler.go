package logout

import (
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
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

// Handle POST /api/v1/session/logout
// Состояние мастера и список бронирований очищаются даже при ошибке хранилища,
// чтобы данные пользователя не достались следующему.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.wizard.Reset()
	h.bookings.Clear()

	if err := h.service.Logout(r.Context()); err != nil {
		h.logger.Error("POST /session/logout - Failed to clear session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /session/logout - Session cleared")
	w.WriteHeader(http.StatusNoContent)
}
