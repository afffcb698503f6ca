package api

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookSlotHandler "github.com/m04kA/SMC-RideSlotService/internal/api/handlers/book_slot"
	closeSlotHandler "github.com/m04kA/SMC-RideSlotService/internal/api/handlers/close_slot"
	dismissPromptHandler "github.com/m04kA/SMC-RideSlotService/internal/api/handlers/dismiss_prompt"
	getBookingPageHandler "github.com/m04kA/SMC-RideSlotService/internal/api/handlers/get_booking_page"
	getPageHandler "github.com/m04kA/SMC-RideSlotService/internal/api/handlers/get_page"
	healthHandler "github.com/m04kA/SMC-RideSlotService/internal/api/handlers/health"
	hideContactHandler "github.com/m04kA/SMC-RideSlotService/internal/api/handlers/hide_contact"
	listParticipantsHandler "github.com/m04kA/SMC-RideSlotService/internal/api/handlers/list_participants"
	reopenSlotHandler "github.com/m04kA/SMC-RideSlotService/internal/api/handlers/reopen_slot"
	showContactHandler "github.com/m04kA/SMC-RideSlotService/internal/api/handlers/show_contact"
	"github.com/m04kA/SMC-RideSlotService/internal/api/middleware"
	"github.com/m04kA/SMC-RideSlotService/internal/service/sessions"
	"github.com/m04kA/SMC-RideSlotService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Options параметры маршрутизатора
type Options struct {
	CookieName string
	SessionTTL time.Duration

	MetricsPath string // пустой путь не публикует /metrics

	RateLimiter *middleware.RateLimiter // nil отключает ограничение частоты
}

// NewRouter собирает маршруты страницы бронирования и JSON API
// metricsCollector == nil отключает HTTP метрики
func NewRouter(registry *sessions.Registry, metricsCollector *metrics.Metrics, logger Logger, opts Options) http.Handler {
	// Инициализируем handlers
	getBookingPage := getBookingPageHandler.NewHandler(logger)
	getPage := getPageHandler.NewHandler(logger)
	bookSlot := bookSlotHandler.NewHandler(logger)
	closeSlot := closeSlotHandler.NewHandler(logger)
	reopenSlot := reopenSlotHandler.NewHandler(logger)
	showContact := showContactHandler.NewHandler(logger)
	hideContact := hideContactHandler.NewHandler(logger)
	dismissPrompt := dismissPromptHandler.NewHandler(logger)
	listParticipants := listParticipantsHandler.NewHandler()
	health := healthHandler.NewHandler(registry)

	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
	}
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware)
	}

	// Служебные маршруты
	if metricsCollector != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}
	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	session := middleware.Session(registry, opts.CookieName, opts.SessionTTL)

	// ============================================================
	// JSON API
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/participants", listParticipants.Handle).Methods(http.MethodGet)

	apiPage := api.PathPrefix("").Subrouter()
	apiPage.Use(session)

	apiPage.HandleFunc("/page", getPage.Handle).Methods(http.MethodGet)
	apiPage.HandleFunc("/slots/{slotId}/book", bookSlot.Handle).Methods(http.MethodPost)
	apiPage.HandleFunc("/slots/{slotId}/close", closeSlot.Handle).Methods(http.MethodPost)
	apiPage.HandleFunc("/slots/{slotId}/reopen", reopenSlot.Handle).Methods(http.MethodPost)
	apiPage.HandleFunc("/contact", showContact.Handle).Methods(http.MethodPost)
	apiPage.HandleFunc("/contact", hideContact.Handle).Methods(http.MethodDelete)

	// ============================================================
	// HTML страница (формы, POST-redirect-GET)
	// ============================================================

	web := r.PathPrefix("/").Subrouter()
	web.Use(session)

	web.HandleFunc("/", getBookingPage.Handle).Methods(http.MethodGet)
	web.HandleFunc("/slots/{slotId}/book", bookSlot.HandleForm).Methods(http.MethodPost)
	web.HandleFunc("/slots/{slotId}/close", closeSlot.HandleForm).Methods(http.MethodPost)
	web.HandleFunc("/slots/{slotId}/reopen", reopenSlot.HandleForm).Methods(http.MethodPost)
	web.HandleFunc("/slots/{slotId}/participants/{index}/contact", showContact.HandleSlotParticipantForm).Methods(http.MethodPost)
	web.HandleFunc("/participants/{participantId}/contact", showContact.HandleDirectoryForm).Methods(http.MethodPost)
	web.HandleFunc("/contact/close", hideContact.HandleForm).Methods(http.MethodPost)
	web.HandleFunc("/prompt/dismiss", dismissPrompt.HandleForm).Methods(http.MethodPost)

	return middleware.Recovery(logger)(handlers.CompressHandler(r))
}
