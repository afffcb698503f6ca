package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RideSlotService/internal/service/page"
)

// Registry страницы бронирования по идентификатору сессии браузера
// Каждая сессия владеет своим состоянием: слоты, закрытия и модальное окно не разделяются
type Registry struct {
	mu           sync.Mutex
	pages        map[string]*entry
	factory      PageFactory
	idleTimeout  time.Duration
	timeProvider TimeProvider
	metrics      Recorder
	logger       Logger
}

type entry struct {
	page     *page.Page
	lastSeen time.Time
}

// NewRegistry создает пустой реестр
func NewRegistry(factory PageFactory, idleTimeout time.Duration, metrics Recorder, logger Logger) *Registry {
	return &Registry{
		pages:        make(map[string]*entry),
		factory:      factory,
		idleTimeout:  idleTimeout,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (r *Registry) WithTimeProvider(tp TimeProvider) *Registry {
	r.timeProvider = tp
	return r
}

// Create монтирует новую страницу с указанным режимом
func (r *Registry) Create(mode string) (string, *page.Page) {
	p := r.factory()
	p.Mount(mode)

	id := uuid.NewString()

	r.mu.Lock()
	r.pages[id] = &entry{page: p, lastSeen: r.timeProvider.Now()}
	total := len(r.pages)
	r.mu.Unlock()

	r.metrics.SessionOpened()
	r.logger.Info("Create: session %s opened with mode=%q (active=%d)", id, mode, total)

	return id, p
}

// Get возвращает страницу сессии и продлевает её жизнь
func (r *Registry) Get(id string) (*page.Page, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.pages[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.timeProvider.Now()
	return e.page, true
}

// Sweep размонтирует страницы, простаивающие дольше idleTimeout
// Возвращает количество закрытых сессий
func (r *Registry) Sweep() int {
	now := r.timeProvider.Now()

	r.mu.Lock()
	expired := make([]*page.Page, 0)
	for id, e := range r.pages {
		if now.Sub(e.lastSeen) > r.idleTimeout {
			expired = append(expired, e.page)
			delete(r.pages, id)
		}
	}
	r.mu.Unlock()

	for _, p := range expired {
		p.Unmount()
		r.metrics.SessionClosed()
	}

	if len(expired) > 0 {
		r.logger.Info("Sweep: closed %d idle sessions", len(expired))
	}
	return len(expired)
}

// Close размонтирует все страницы
func (r *Registry) Close() {
	r.mu.Lock()
	pages := r.pages
	r.pages = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range pages {
		e.page.Unmount()
		r.metrics.SessionClosed()
	}

	r.logger.Info("Close: closed %d sessions", len(pages))
}

// Len количество активных сессий
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pages)
}
