package get_page

import (
	"net/http"

	"github.com/m04kA/SMC-RideSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-RideSlotService/internal/api/middleware"
)

const msgNoSession = "сессия не найдена"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle GET /api/v1/page?mode={mode}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPage(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgNoSession)
		return
	}

	if query := r.URL.Query(); query.Has("mode") {
		if p.SetMode(query.Get("mode")) {
			h.logger.Info("GET /api/v1/page - Mode switched: mode=%q", query.Get("mode"))
		}
	}

	handlers.RespondJSON(w, http.StatusOK, p.View())
}
