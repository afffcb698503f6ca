package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-RideSlotService/internal/domain"
)

// generateSlots строит пачку слотов: слот i начинается в now + i*step
// Вместимость копируется из режима, список участников пуст, активен только слот 0
func generateSlots(now time.Time, mode domain.Mode, opts Options) []*domain.Slot {
	slots := make([]*domain.Slot, 0, opts.BatchSize)

	for i := 0; i < opts.BatchSize; i++ {
		slots = append(slots, &domain.Slot{
			ID:           i,
			Time:         now.Add(time.Duration(i) * opts.Step),
			Participants: []domain.Participant{},
			IsActive:     i == 0,
			Capacity:     mode.Capacity,
		})
	}

	return slots
}
