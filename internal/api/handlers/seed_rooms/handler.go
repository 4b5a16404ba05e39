package seed_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/rooms"
)

// Сообщения BFF
const (
	msgSeedingDisabled = "заполнение тестовыми данными отключено в production"
)

// Сообщения интерфейса, показываются гостю как есть
const (
	msgSeedFailed = "Failed to create sample rooms"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/seed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Seed(r.Context()); err != nil {
		switch {
		case errors.Is(err, rooms.ErrSeedingDisabled):
			h.logger.Warn("POST /rooms/seed - Seeding disabled")
			handlers.RespondForbidden(w, msgSeedingDisabled)

		default:
			h.logger.Error("POST /rooms/seed - Failed to seed rooms: %v", err)
			msg := h.service.Catalog(rooms.RoomFilter{}).Error
			if msg == "" {
				msg = msgSeedFailed
			}
			handlers.RespondBadGateway(w, msg)
		}
		return
	}

	catalog := h.service.Catalog(rooms.RoomFilter{})
	h.logger.Info("POST /rooms/seed - Sample rooms created: total=%d", catalog.Total)
	handlers.RespondJSON(w, http.StatusOK, catalog)
}
