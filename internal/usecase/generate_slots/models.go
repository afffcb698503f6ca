package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-RideSlotService/internal/domain"
)

// Request модель запроса на генерацию пачки слотов
type Request struct {
	Mode domain.Mode
}

// Response модель ответа со сгенерированной пачкой
type Response struct {
	GeneratedAt time.Time      // Момент генерации (время первого слота)
	Slots       []*domain.Slot // Слоты в порядке возрастания времени
}

// Options параметры генерации
type Options struct {
	BatchSize int
	Step      time.Duration
}

// DefaultOptions 6 слотов с шагом 10 минут
func DefaultOptions() Options {
	return Options{
		BatchSize: domain.DefaultBatchSize,
		Step:      domain.DefaultSlotStep,
	}
}
