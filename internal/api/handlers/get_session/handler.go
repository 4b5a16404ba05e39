package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
)

type Handler struct {
	service SessionService
}

func NewHandler(service SessionService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.State(r.Context()))
}
