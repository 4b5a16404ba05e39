package change_stage

import (
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStage       = "некорректный шаг"
	msgStageLocked        = "шаг недоступен: условия перехода не выполнены"
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

// Handle POST /api/v1/wizard/stage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChangeStageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/stage - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	stage := domain.Stage(req.Stage)
	if !stage.IsValid() {
		handlers.RespondBadRequest(w, msgInvalidStage)
		return
	}

	state, ok := h.wizard.GoTo(stage)
	if !ok {
		h.logger.Warn("POST /wizard/stage - Transition refused: from=%s, to=%s", state.StageName, stage)
		handlers.RespondConflict(w, msgStageLocked)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, state)
}
