package slots

import (
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-RideSlotService/internal/domain"
)

// Store хранилище состояния слотов одной страницы:
// текущая пачка, множество закрытых слотов и последний забронированный слот
type Store struct {
	mu       sync.RWMutex
	slots    []*domain.Slot
	closed   domain.ClosedSet
	selected *domain.Slot
	viewer   domain.Participant
	logger   Logger
}

// Snapshot копия состояния хранилища
type Snapshot struct {
	Slots    []*domain.Slot
	Closed   domain.ClosedSet
	Selected *domain.Slot // nil, пока ничего не забронировано
}

// BookResult результат применённого бронирования
type BookResult struct {
	Slot       *domain.Slot // слот после добавления участника
	AutoClosed bool         // слот заполнился и был закрыт
}

// NewStore создает пустое хранилище
// viewer - участник, добавляемый при каждом бронировании
func NewStore(viewer domain.Participant, logger Logger) *Store {
	return &Store{
		closed: make(domain.ClosedSet),
		viewer: viewer,
		logger: logger,
	}
}

// Replace заменяет пачку слотов целиком
// Участники и закрытия предыдущей пачки не переносятся
func (s *Store) Replace(batch []*domain.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots = batch
	s.closed = make(domain.ClosedSet)

	s.logger.Debug("Replace: installed batch of %d slots", len(batch))
}

// Book добавляет участника в слот
// Слот должен начинаться не раньше now, не быть заполненным или закрытым
// Если после добавления слот заполнился, он закрывается в той же операции
func (s *Store) Book(id int, now time.Time) (*BookResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, err := s.find(id)
	if err != nil {
		return nil, err
	}

	switch {
	case slot.IsExpired(now):
		return nil, fmt.Errorf("%w: id=%d", ErrSlotExpired, id)
	case slot.IsFull():
		return nil, fmt.Errorf("%w: id=%d", ErrSlotFull, id)
	case s.closed.Contains(id):
		return nil, fmt.Errorf("%w: id=%d", ErrSlotClosed, id)
	}

	// в баннере подтверждения показывается слот в состоянии до бронирования
	s.selected = slot.Clone()

	slot.Participants = append(slot.Participants, s.viewer)

	result := &BookResult{}
	if slot.IsFull() {
		s.closed.Add(id)
		result.AutoClosed = true
	}
	result.Slot = slot.Clone()

	s.logger.Info("Book: slot id=%d now has %d/%s participants (auto_closed=%t)",
		id, len(slot.Participants), slot.Capacity, result.AutoClosed)

	return result, nil
}

// Close добавляет слот в множество закрытых
// Возвращает false, если слот уже закрыт
func (s *Store) Close(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.find(id); err != nil {
		return false, err
	}

	changed := s.closed.Add(id)
	s.logger.Info("Close: slot id=%d closed (changed=%t)", id, changed)
	return changed, nil
}

// Reopen убирает слот из множества закрытых
// Вместимость не меняется: заполненный слот после переоткрытия остаётся заполненным
func (s *Store) Reopen(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.find(id); err != nil {
		return false, err
	}

	changed := s.closed.Remove(id)
	s.logger.Info("Reopen: slot id=%d reopened (changed=%t)", id, changed)
	return changed, nil
}

// Has возвращает true, если слот есть в текущей пачке
func (s *Store) Has(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := s.find(id)
	return err == nil
}

// Participant возвращает участника слота по его позиции
func (s *Store) Participant(slotID, index int) (domain.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, err := s.find(slotID)
	if err != nil {
		return domain.Participant{}, err
	}

	if index < 0 || index >= len(slot.Participants) {
		return domain.Participant{}, fmt.Errorf("%w: slot id=%d index=%d", ErrParticipantNotFound, slotID, index)
	}

	return slot.Participants[index], nil
}

// Snapshot возвращает глубокую копию состояния
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := Snapshot{
		Slots:  make([]*domain.Slot, 0, len(s.slots)),
		Closed: s.closed.Clone(),
	}
	for _, slot := range s.slots {
		out.Slots = append(out.Slots, slot.Clone())
	}
	if s.selected != nil {
		out.Selected = s.selected.Clone()
	}

	return out
}

func (s *Store) find(id int) (*domain.Slot, error) {
	for _, slot := range s.slots {
		if slot.ID == id {
			return slot, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrSlotNotFound, id)
}
