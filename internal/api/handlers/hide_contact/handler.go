package hide_contact

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

// Handle DELETE /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPage(r.Context())
	if ok {
		p.HideContact()
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleForm POST /contact/close
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	mode := ""
	if p, ok := middleware.GetPage(r.Context()); ok {
		p.HideContact()
		_, mode = p.Mode()
	}

	h.logger.Info("POST /contact/close - Contact modal hidden")
	handlers.RedirectToPage(w, r, mode)
}
