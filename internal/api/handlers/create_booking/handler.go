package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
)

// Сообщения интерфейса, показываются гостю как есть
const (
	msgSelectRoom      = "Please select a room first."
	msgNotAvailable    = "Please choose valid dates. This room is not available for the selected range."
	msgContactRequired = "Please enter your name and email."
	msgGuestDetails    = "Please review your guest details before confirming."
	msgBookingFailed   = "Booking failed. Please try again."
)

// Сообщения BFF
const (
	msgInProgress = "бронирование уже отправляется"
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

// Handle POST /api/v1/wizard/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.wizard.Submit(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, booking_wizard.ErrNoRoomSelected):
			handlers.RespondBadRequest(w, msgSelectRoom)

		case errors.Is(err, booking_wizard.ErrNotAvailable):
			handlers.RespondBadRequest(w, msgNotAvailable)

		case errors.Is(err, booking_wizard.ErrContactRequired):
			handlers.RespondBadRequest(w, msgContactRequired)

		case errors.Is(err, booking_wizard.ErrInvalidStage):
			h.logger.Warn("POST /wizard/submit - Submit outside of guest details stage")
			handlers.RespondConflict(w, msgGuestDetails)

		case errors.Is(err, booking_wizard.ErrSubmitInProgress):
			h.logger.Warn("POST /wizard/submit - Submission already in progress")
			handlers.RespondConflict(w, msgInProgress)

		case errors.Is(err, booking_wizard.ErrBookingRejected):
			h.logger.Warn("POST /wizard/submit - Booking rejected: %v", err)
			handlers.RespondConflict(w, handlers.ErrorDetail(err, booking_wizard.ErrBookingRejected, msgBookingFailed))

		default:
			h.logger.Error("POST /wizard/submit - Failed to create booking: %v", err)
			handlers.RespondBadGateway(w, msgBookingFailed)
		}
		return
	}

	h.logger.Info("POST /wizard/submit - Booking created: booking_id=%s, room_type=%s", receipt.BookingCode, receipt.RoomType)
	handlers.RespondJSON(w, http.StatusCreated, receipt)
}
