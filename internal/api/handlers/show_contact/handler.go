package show_contact

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RideSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-RideSlotService/internal/api/middleware"
	"github.com/m04kA/SMC-RideSlotService/internal/service/page"
	"github.com/m04kA/SMC-RideSlotService/internal/service/slots"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidSlotID       = "некорректный ID слота"
	msgInvalidIndex        = "некорректный индекс участника"
	msgParticipantNotFound = "участник не найден"
	msgSlotNotFound        = "слот не найден"
	msgNoSession           = "сессия не найдена"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ShowContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/v1/contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !req.bySlot() && req.ParticipantID == "" {
		h.logger.Warn("POST /api/v1/contact - Neither participantId nor slotId/index given")
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	p, ok := h.sessionPage(w, r)
	if !ok {
		return
	}

	var err error
	if req.bySlot() {
		err = p.ShowContact(*req.SlotID, *req.Index)
	} else {
		err = p.ShowDirectoryContact(req.ParticipantID)
	}
	if !h.handleErr(w, err, "POST /api/v1/contact") {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p.View())
}

// HandleSlotParticipantForm POST /slots/{slotId}/participants/{index}/contact
func (h *Handler) HandleSlotParticipantForm(w http.ResponseWriter, r *http.Request) {
	slotID, err := handlers.IntVar(r, "slotId")
	if err != nil {
		h.logger.Warn("POST /slots/{id}/participants/{index}/contact - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	index, err := handlers.IntVar(r, "index")
	if err != nil {
		h.logger.Warn("POST /slots/{id}/participants/{index}/contact - Invalid index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	p, ok := h.sessionPage(w, r)
	if !ok {
		return
	}

	if !h.handleErr(w, p.ShowContact(slotID, index), "POST /slots/{id}/participants/{index}/contact") {
		return
	}

	_, mode := p.Mode()
	handlers.RedirectToPage(w, r, mode)
}

// HandleDirectoryForm POST /participants/{participantId}/contact
func (h *Handler) HandleDirectoryForm(w http.ResponseWriter, r *http.Request) {
	participantID := mux.Vars(r)["participantId"]

	p, ok := h.sessionPage(w, r)
	if !ok {
		return
	}

	if !h.handleErr(w, p.ShowDirectoryContact(participantID), "POST /participants/{id}/contact") {
		return
	}

	_, mode := p.Mode()
	handlers.RedirectToPage(w, r, mode)
}

func (h *Handler) sessionPage(w http.ResponseWriter, r *http.Request) (*page.Page, bool) {
	p, ok := middleware.GetPage(r.Context())
	if !ok {
		h.logger.Warn("%s %s - Missing session page", r.Method, r.URL.Path)
		handlers.RespondNotFound(w, msgNoSession)
	}
	return p, ok
}

// handleErr отвечает ошибкой и возвращает false, если err != nil
func (h *Handler) handleErr(w http.ResponseWriter, err error, route string) bool {
	switch {
	case err == nil:
		return true

	case errors.Is(err, slots.ErrSlotNotFound):
		h.logger.Warn("%s - Slot not found: %v", route, err)
		handlers.RespondNotFound(w, msgSlotNotFound)

	case errors.Is(err, slots.ErrParticipantNotFound), errors.Is(err, page.ErrParticipantNotFound):
		h.logger.Warn("%s - Participant not found: %v", route, err)
		handlers.RespondNotFound(w, msgParticipantNotFound)

	default:
		h.logger.Error("%s - Failed to show contact: %v", route, err)
		handlers.RespondInternalError(w)
	}
	return false
}
