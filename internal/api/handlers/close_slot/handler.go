package close_slot

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

// Handle POST /api/v1/slots/{slotId}/close
// Без поля confirm вопрос остаётся открытым и возвращается в prompt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeConfirm(r)
	if err != nil {
		h.logger.Warn("POST /api/v1/slots/{id}/close - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	p, ok := h.close(w, r, req.Confirmer())
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p.View())
}

// HandleForm POST /slots/{slotId}/close
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	p, ok := h.close(w, r, handlers.FormConfirmer(r))
	if !ok {
		return
	}

	_, mode := p.Mode()
	handlers.RedirectToPage(w, r, mode)
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request, confirmer page.Confirmer) (*page.Page, bool) {
	slotID, err := handlers.IntVar(r, "slotId")
	if err != nil {
		h.logger.Warn("POST /slots/{id}/close - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return nil, false
	}

	p, ok := middleware.GetPage(r.Context())
	if !ok {
		h.logger.Warn("POST /slots/{id}/close - Missing session page")
		handlers.RespondNotFound(w, msgNoSession)
		return nil, false
	}

	if err := p.CloseSlot(slotID, confirmer); err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/close - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, page.ErrNotMounted):
			h.logger.Warn("POST /slots/{id}/close - Page not mounted: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgPageNotMounted)

		default:
			h.logger.Error("POST /slots/{id}/close - Failed to close slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return nil, false
	}

	h.logger.Info("POST /slots/{id}/close - Close handled: slot_id=%d", slotID)
	return p, true
}
