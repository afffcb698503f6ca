package dismiss_prompt

import (
	"net/http"

	"github.com/m04kA/SMC-RideSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-RideSlotService/internal/api/middleware"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// HandleForm POST /prompt/dismiss
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	mode := ""
	if p, ok := middleware.GetPage(r.Context()); ok {
		p.DismissPrompt()
		_, mode = p.Mode()
	}

	h.logger.Info("POST /prompt/dismiss - Confirmation prompt dismissed")
	handlers.RedirectToPage(w, r, mode)
}
