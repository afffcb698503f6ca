package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler периодическая задача с явным управлением жизненным циклом
// Повторный Start отменяет предыдущее расписание
type Scheduler struct {
	mu     sync.Mutex
	name   string
	cron   *cron.Cron
	logger Logger
}

// New создает остановленный планировщик
func New(name string, logger Logger) *Scheduler {
	return &Scheduler{
		name:   name,
		logger: logger,
	}
}

// Start запускает job каждые interval (не чаще раза в секунду)
func (s *Scheduler) Start(interval time.Duration, job func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	log := cronLogger{name: s.name, logger: s.logger}
	c := cron.New(
		cron.WithLogger(log),
		cron.WithChain(cron.Recover(log)),
	)
	c.Schedule(cron.Every(interval), cron.FuncJob(job))
	c.Start()

	s.cron = c
	s.logger.Debug("Scheduler %s: started, interval=%s", s.name, interval)
}

// Stop отменяет расписание. Уже выполняющийся job не прерывается и не ожидается.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if s.cron == nil {
		return
	}
	s.cron.Stop()
	s.cron = nil
	s.logger.Debug("Scheduler %s: stopped", s.name)
}

// cronLogger адаптер логгера сервиса к cron.Logger
type cronLogger struct {
	name   string
	logger Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("Scheduler %s: %s %s", l.name, msg, formatKV(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("Scheduler %s: %s: %v %s", l.name, msg, err, formatKV(keysAndValues))
}

func formatKV(keysAndValues []interface{}) string {
	out := ""
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out += fmt.Sprintf("%v=%v ", keysAndValues[i], keysAndValues[i+1])
	}
	return out
}
