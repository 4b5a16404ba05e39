package get_wizard

import (
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
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

// Handle GET /api/v1/wizard
// room_type предварительно выбирает номер, если он еще не выбран.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomType := r.URL.Query().Get("room_type")
	if roomType == "" {
		handlers.RespondJSON(w, http.StatusOK, h.wizard.State())
		return
	}

	state, selected := h.wizard.SelectRoomByType(roomType, h.rooms.Rooms())
	if selected {
		h.logger.Info("GET /wizard - Room preselected: room_type=%s", roomType)
	}
	handlers.RespondJSON(w, http.StatusOK, state)
}
