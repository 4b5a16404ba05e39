package select_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/rooms"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRoomRequired       = "укажите room_id или room_type"
	msgRoomNotFound       = "номер не найден"
)

type Handler struct {
	wizard Wizard
	rooms  RoomsService
	logger Logger
}

func NewHandler(wizard Wizard, rooms RoomsService, logger Logger) *Handler {
	return &Handler{
		wizard: wizard,
		rooms:  rooms,
		logger: logger,
	}
}

// Handle POST /api/v1/wizard/room
// Превышение вместимости не ошибка запроса: сообщение возвращается в состоянии мастера.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/room - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var (
		room *domain.Room
		err  error
	)
	switch {
	case req.RoomID != nil:
		room, err = h.rooms.FindByID(*req.RoomID)
	case req.RoomType != "":
		room, err = h.rooms.FindByType(req.RoomType)
	default:
		handlers.RespondBadRequest(w, msgRoomRequired)
		return
	}
	if err != nil {
		if errors.Is(err, rooms.ErrRoomNotFound) {
			h.logger.Warn("POST /wizard/room - Room not found: %v", err)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("POST /wizard/room - Failed to find room: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	state, err := h.wizard.SelectRoom(*room)
	if err != nil && !errors.Is(err, booking_wizard.ErrCapacityExceeded) {
		h.logger.Error("POST /wizard/room - Failed to select room: room_id=%d, error=%v", room.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard/room - Room selected: room_id=%d, room_type=%s", room.ID, room.RoomType)
	handlers.RespondJSON(w, http.StatusOK, state)
}
