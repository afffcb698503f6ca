package page

import (
	"time"

	generateSlots "github.com/m04kA/SMC-RideSlotService/internal/usecase/generate_slots"
)

// SlotGenerator интерфейс генератора пачки слотов
type SlotGenerator interface {
	Execute(req *generateSlots.Request) *generateSlots.Response
}

// Scheduler интерфейс периодической задачи перегенерации
// Start заменяет ранее запущенное расписание
type Scheduler interface {
	Start(interval time.Duration, job func())
	Stop()
}

// Confirmer синхронная граница подтверждения действий закрытия/переоткрытия
type Confirmer interface {
	Confirm(prompt Prompt) Decision
}

// Recorder интерфейс сбора метрик страницы
type Recorder interface {
	SlotBooked(mode string)
	BookingIgnored(mode string)
	SlotClosed(mode, reason string)
	SlotReopened(mode string)
	ConfirmationDeclined(action string)
	SlotsRegenerated(mode, trigger string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
