package book_slot

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

// Handle POST /api/v1/slots/{slotId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	p, ok := h.book(w, r)
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p.View())
}

// HandleForm POST /slots/{slotId}/book
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	p, ok := h.book(w, r)
	if !ok {
		return
	}

	_, mode := p.Mode()
	handlers.RedirectToPage(w, r, mode)
}

func (h *Handler) book(w http.ResponseWriter, r *http.Request) (*page.Page, bool) {
	slotID, err := handlers.IntVar(r, "slotId")
	if err != nil {
		h.logger.Warn("POST /slots/{id}/book - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return nil, false
	}

	p, ok := middleware.GetPage(r.Context())
	if !ok {
		h.logger.Warn("POST /slots/{id}/book - Missing session page")
		handlers.RespondNotFound(w, msgNoSession)
		return nil, false
	}

	// Просроченный, заполненный или закрытый слот игнорируется без ошибки
	if err := p.BookSlot(slotID); err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/book - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, page.ErrNotMounted):
			h.logger.Warn("POST /slots/{id}/book - Page not mounted: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgPageNotMounted)

		default:
			h.logger.Error("POST /slots/{id}/book - Failed to book slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return nil, false
	}

	h.logger.Info("POST /slots/{id}/book - Booking handled: slot_id=%d", slotID)
	return p, true
}
