package sessions

import (
	"time"

	"github.com/m04kA/SMC-RideSlotService/internal/service/page"
)

// PageFactory создает новую размонтированную страницу
type PageFactory func() *page.Page

// Recorder интерфейс метрик сессий
type Recorder interface {
	SessionOpened()
	SessionClosed()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
