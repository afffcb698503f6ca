package get_booking_page

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/m04kA/SMC-RideSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-RideSlotService/internal/api/middleware"
)

const msgNoSession = "сессия не найдена"

//go:embed page.html
var pageHTML string

type Handler struct {
	tmpl   *template.Template
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		tmpl:   template.Must(template.New("page").Parse(pageHTML)),
		logger: logger,
	}
}

// Handle GET /?mode={mode}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPage(r.Context())
	if !ok {
		h.logger.Warn("GET / - Missing session page")
		handlers.RespondNotFound(w, msgNoSession)
		return
	}

	// Смена режима только при явно переданном параметре
	if query := r.URL.Query(); query.Has("mode") {
		if p.SetMode(query.Get("mode")) {
			h.logger.Info("GET / - Mode switched: mode=%q", query.Get("mode"))
		}
	}

	// Рендерим в буфер, чтобы ошибка шаблона не оставила полустраницу
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, newPageData(p.View())); err != nil {
		h.logger.Error("GET / - Failed to render page: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
