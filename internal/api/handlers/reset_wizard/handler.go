package reset_wizard

import (
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
)

type Handler struct {
	wizard Wizard
}

func NewHandler(wizard Wizard) *Handler {
	return &Handler{wizard: wizard}
}

// Handle POST /api/v1/wizard/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.wizard.Reset())
}
