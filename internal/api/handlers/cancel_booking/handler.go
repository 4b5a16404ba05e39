package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/bookings"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/bookings/models"
)

// Сообщения BFF
const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgAlreadyCancelled = "бронирование уже отменено"
)

// Сообщения интерфейса, показываются гостю как есть
const (
	msgCancelFailed = "Failed to cancel booking"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{id}/cancel
// id внутренний идентификатор бронирования, не публичный код LUX...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем id из URL
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid booking ID: %q", vars["id"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	err = h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("POST /bookings/{id}/cancel - Already cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("POST /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondConflict(w, handlers.ErrorDetail(err, bookings.ErrCannotCancel, msgCancelFailed))

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondBadGateway(w, msgCancelFailed)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, h.service.List(models.BookingFilter{}))
}
