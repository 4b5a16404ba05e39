package get_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
)

// Сообщения BFF
const (
	msgInvalidQuery = "некорректные параметры запроса"
)

// Сообщения интерфейса, показываются гостю как есть
const (
	msgLoadFailed = "Failed to load rooms"
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

// Handle GET /api/v1/rooms
// Пустой каталог загружается при первом запросе, refresh=true перезагружает его.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query, ok := parseQuery(r.URL.Query())
	if !ok {
		h.logger.Warn("GET /rooms - Invalid query: %s", r.URL.RawQuery)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	filter := query.ToFilter()
	if query.Refresh || h.service.Catalog(filter).Total == 0 {
		if err := h.service.Load(r.Context()); err != nil {
			h.logger.Error("GET /rooms - Failed to load catalog: %v", err)
			catalog := h.service.Catalog(filter)
			msg := catalog.Error
			if msg == "" {
				msg = msgLoadFailed
			}
			handlers.RespondBadGateway(w, msg)
			return
		}
	}

	catalog := h.service.Catalog(filter)
	h.logger.Info("GET /rooms - Catalog returned: showing=%d, total=%d", catalog.Showing, catalog.Total)
	handlers.RespondJSON(w, http.StatusOK, catalog)
}
