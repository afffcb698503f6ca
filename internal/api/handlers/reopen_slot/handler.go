package reopen_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RideSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-RideSlotService/internal/api/middleware"
	"github.com/m04kA/SMC-RideSlotService/internal/service/page"
	"github.com/m04kA/SMC-RideSlotService/internal/service/slots"
)

const (
	msgInvalidSlotID  = "некорректный ID слота"
	msgInvalidBody    = "некорректное тело запроса"
	msgSlotNotFound   = "слот не найден"
	msgNoSession      = "сессия не найдена"
	msgPageNotMounted = "страница закрыта, обновите её"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/reopen
// Заполненный слот после переоткрытия остаётся заполненным
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeConfirm(r)
	if err != nil {
		h.logger.Warn("POST /api/v1/slots/{id}/reopen - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	p, ok := h.reopen(w, r, req.Confirmer())
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p.View())
}

// HandleForm POST /slots/{slotId}/reopen
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	p, ok := h.reopen(w, r, handlers.FormConfirmer(r))
	if !ok {
		return
	}

	_, mode := p.Mode()
	handlers.RedirectToPage(w, r, mode)
}

func (h *Handler) reopen(w http.ResponseWriter, r *http.Request, confirmer page.Confirmer) (*page.Page, bool) {
	slotID, err := handlers.IntVar(r, "slotId")
	if err != nil {
		h.logger.Warn("POST /slots/{id}/reopen - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return nil, false
	}

	p, ok := middleware.GetPage(r.Context())
	if !ok {
		h.logger.Warn("POST /slots/{id}/reopen - Missing session page")
		handlers.RespondNotFound(w, msgNoSession)
		return nil, false
	}

	if err := p.ReopenSlot(slotID, confirmer); err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/reopen - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, page.ErrNotMounted):
			h.logger.Warn("POST /slots/{id}/reopen - Page not mounted: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgPageNotMounted)

		default:
			h.logger.Error("POST /slots/{id}/reopen - Failed to reopen slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return nil, false
	}

	h.logger.Info("POST /slots/{id}/reopen - Reopen handled: slot_id=%d", slotID)
	return p, true
}
