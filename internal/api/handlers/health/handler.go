package health

import (
	"net/http"

	"github.com/m04kA/SMC-RideSlotService/internal/api/handlers"
)

// SessionCounter интерфейс реестра сессий
type SessionCounter interface {
	Len() int
}

// StatusResponse HTTP response model
type StatusResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

type Handler struct {
	sessions SessionCounter
}

func NewHandler(sessions SessionCounter) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok", Sessions: h.sessions.Len()})
}
