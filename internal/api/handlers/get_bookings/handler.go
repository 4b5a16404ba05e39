package get_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/bookings/models"
)

const (
	msgInvalidRefresh = "некорректный параметр refresh"
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

// Handle GET /api/v1/bookings
// Список загружается при первом обращении, refresh=true перезагружает его. Ошибка перезагрузки возвращается в поле error,
// ранее загруженный список при этом сохраняется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	refresh := false
	if raw := values.Get("refresh"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid refresh parameter: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidRefresh)
			return
		}
		refresh = parsed
	}

	if refresh || !h.service.Loaded() {
		if err := h.service.Refresh(r.Context()); err != nil {
			h.logger.Warn("GET /bookings - Refresh failed, serving previous list: %v", err)
		}
	}

	filter := models.BookingFilter{
		RoomType: values.Get("room_type"),
		Status:   values.Get("status"),
		Query:    values.Get("q"),
	}
	result := h.service.List(filter)

	h.logger.Info("GET /bookings - Bookings retrieved successfully: showing=%d", result.Showing)
	handlers.RespondJSON(w, http.StatusOK, result)
}
