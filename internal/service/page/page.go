package page

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/m04kA/SMC-RideSlotService/internal/domain"
	"github.com/m04kA/SMC-RideSlotService/internal/service/contact"
	"github.com/m04kA/SMC-RideSlotService/internal/service/slots"
	"github.com/m04kA/SMC-RideSlotService/internal/service/status"
	generateSlots "github.com/m04kA/SMC-RideSlotService/internal/usecase/generate_slots"
)

// Regeneration triggers
const (
	triggerMount = "mount"
	triggerTick  = "tick"
	triggerMode  = "mode"
)

// Page состояние одной страницы бронирования
// Все события (таймер, действия пользователя, смена режима) сериализуются мьютексом
type Page struct {
	mu          sync.Mutex
	rawMode     string
	mode        domain.Mode
	currentTime time.Time
	mounted     bool
	prompt      *Prompt

	regeneratedAt time.Time // отсчет таймера перегенерации

	store        *slots.Store
	modal        *contact.Modal
	generator    SlotGenerator
	scheduler    Scheduler
	opts         Options
	timeProvider TimeProvider
	metrics      Recorder
	logger       Logger
}

// New создает размонтированную страницу
func New(
	generator SlotGenerator,
	scheduler Scheduler,
	metrics Recorder,
	logger Logger,
	opts Options,
) *Page {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = domain.DefaultRefreshInterval
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	return &Page{
		store:        slots.NewStore(domain.CurrentViewer(), logger),
		modal:        contact.NewModal(),
		generator:    generator,
		scheduler:    scheduler,
		opts:         opts,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (p *Page) WithTimeProvider(tp TimeProvider) *Page {
	p.timeProvider = tp
	return p
}

// Mount инициализирует страницу: первая пачка слотов и запуск таймера
func (p *Page) Mount(modeKey string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mounted {
		return
	}

	p.rawMode = modeKey
	p.mode = domain.LookupMode(modeKey)
	p.currentTime = p.timeProvider.Now()
	p.mounted = true

	p.regenerateLocked(triggerMount)
	p.scheduler.Start(p.opts.RefreshInterval, p.Tick)

	p.logger.Info("Mount: page mounted with mode=%q", modeKey)
}

// SetMode меняет режим: пачка перегенерируется, таймер перезапускается
// Текущее время страницы при этом не обновляется
// Возвращает false, если режим не изменился или страница размонтирована
func (p *Page) SetMode(modeKey string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.mounted || modeKey == p.rawMode {
		return false
	}

	p.rawMode = modeKey
	p.mode = domain.LookupMode(modeKey)

	p.scheduler.Stop()
	p.regenerateLocked(triggerMode)
	p.scheduler.Start(p.opts.RefreshInterval, p.Tick)

	p.logger.Info("SetMode: mode changed to %q", modeKey)
	return true
}

// Tick обработчик таймера: обновляет текущее время и перегенерирует пачку
func (p *Page) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.mounted {
		return
	}

	p.currentTime = p.timeProvider.Now()
	p.regenerateLocked(triggerTick)
}

// Unmount останавливает таймер; последующие тики игнорируются
func (p *Page) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.mounted {
		return
	}

	p.mounted = false
	p.scheduler.Stop()

	p.logger.Info("Unmount: page with mode=%q unmounted", p.rawMode)
}

// Mounted возвращает true, пока страница смонтирована
func (p *Page) Mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.mounted
}

// Mode возвращает текущий режим и исходное значение параметра
func (p *Page) Mode() (domain.Mode, string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.mode, p.rawMode
}

// BookSlot бронирует слот для текущего пользователя
// Просроченный, заполненный или закрытый слот молча игнорируется
func (p *Page) BookSlot(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.mounted {
		return ErrNotMounted
	}

	label := p.mode.MetricLabel()

	res, err := p.store.Book(id, p.currentTime)
	switch {
	case errors.Is(err, slots.ErrSlotNotFound):
		return err
	case err != nil:
		p.logger.Debug("BookSlot: ignored: %v", err)
		p.metrics.BookingIgnored(label)
		return nil
	}

	p.metrics.SlotBooked(label)
	if res.AutoClosed {
		p.metrics.SlotClosed(label, "capacity")
	}

	return nil
}

// CloseSlot закрывает слот после подтверждения
func (p *Page) CloseSlot(id int, c Confirmer) error {
	return p.confirmAndApply(closePrompt(id), c, func() error {
		changed, err := p.store.Close(id)
		if err == nil && changed {
			p.metrics.SlotClosed(p.mode.MetricLabel(), "operator")
		}
		return err
	})
}

// ReopenSlot переоткрывает слот после подтверждения
// Заполненный слот остаётся заполненным
func (p *Page) ReopenSlot(id int, c Confirmer) error {
	return p.confirmAndApply(reopenPrompt(id), c, func() error {
		changed, err := p.store.Reopen(id)
		if err == nil && changed {
			p.metrics.SlotReopened(p.mode.MetricLabel())
		}
		return err
	})
}

func (p *Page) confirmAndApply(prompt Prompt, c Confirmer, apply func() error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.mounted {
		return ErrNotMounted
	}

	if !p.store.Has(prompt.SlotID) {
		return fmt.Errorf("%w: id=%d", slots.ErrSlotNotFound, prompt.SlotID)
	}

	prompt.Open = prompt.sameQuestion(p.prompt)

	switch c.Confirm(prompt) {
	case Pending:
		p.prompt = &prompt
		p.logger.Debug("%s slot id=%d: waiting for confirmation", prompt.Action, prompt.SlotID)
		return nil
	case Declined:
		p.prompt = nil
		p.metrics.ConfirmationDeclined(string(prompt.Action))
		p.logger.Debug("%s slot id=%d: declined", prompt.Action, prompt.SlotID)
		return nil
	}

	p.prompt = nil
	return apply()
}

// DismissPrompt закрывает открытый вопрос подтверждения без действия
func (p *Page) DismissPrompt() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.prompt = nil
}

// ShowContact открывает контакт участника слота
func (p *Page) ShowContact(slotID, index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	participant, err := p.store.Participant(slotID, index)
	if err != nil {
		return err
	}

	p.modal.Show(participant)
	return nil
}

// ShowDirectoryContact открывает контакт из демо-справочника
func (p *Page) ShowDirectoryContact(participantID string) error {
	participant, ok := domain.DirectoryParticipant(participantID)
	if !ok {
		return fmt.Errorf("%w: id=%q", ErrParticipantNotFound, participantID)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.modal.Show(participant)
	return nil
}

// HideContact закрывает модальное окно
func (p *Page) HideContact() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.modal.Hide()
}

// View строит модель отображения
func (p *Page) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := p.store.Snapshot()
	now := p.currentTime

	view := View{
		Mode:        p.rawMode,
		Icon:        p.mode.Icon,
		Color:       p.mode.Color,
		Title:       fmt.Sprintf("Book your %s slot", p.rawMode),
		CurrentTime: p.formatTime(now),
		RefreshIn:   p.refreshInLocked(),
		Slots:       make([]SlotView, 0, len(snap.Slots)),
	}

	for _, slot := range snap.Slots {
		e := status.Evaluate(now, slot, snap.Closed)

		chips := make([]ParticipantChip, 0, len(slot.Participants))
		for i, participant := range slot.Participants {
			chips = append(chips, ParticipantChip{Index: i, Name: participant.Name})
		}

		view.Slots = append(view.Slots, SlotView{
			ID:           slot.ID,
			Time:         p.formatTime(slot.Time),
			Status:       e.Status,
			FullStatus:   e.Full,
			Active:       slot.IsActive,
			Expired:      e.Expired,
			Closed:       e.Closed || e.Full,
			Participants: chips,
			Actions: ActionsView{
				BookLabel:      e.Actions.BookLabel,
				BookDisabled:   e.Actions.BookDisabled,
				ShowClose:      e.Actions.ShowClose,
				CloseDisabled:  e.Actions.CloseDisabled,
				ShowReopen:     e.Actions.ShowReopen,
				ReopenDisabled: e.Actions.ReopenDisabled,
			},
		})
	}

	if participant, ok := p.modal.Visible(); ok {
		view.Contact = &ContactView{
			ID:      participant.ID,
			Name:    participant.Name,
			Initial: participant.Initial(),
			Contact: participant.Contact,
			Rating:  strconv.FormatFloat(participant.Rating, 'f', 1, 64),
			Trips:   participant.Trips,
		}
	}

	if snap.Selected != nil {
		view.Confirmation = &ConfirmationView{
			Time:    p.formatTime(snap.Selected.Time),
			Message: domain.ArrivalReminder,
		}
	}

	if p.prompt != nil {
		view.Prompt = &PromptView{
			Action:  string(p.prompt.Action),
			SlotID:  p.prompt.SlotID,
			Message: p.prompt.Message,
		}
	}

	return view
}

func (p *Page) regenerateLocked(trigger string) {
	resp := p.generator.Execute(&generateSlots.Request{Mode: p.mode})
	p.store.Replace(resp.Slots)
	p.regeneratedAt = p.timeProvider.Now()

	// вопрос о слоте старой пачки теряет смысл
	p.prompt = nil

	p.metrics.SlotsRegenerated(p.mode.MetricLabel(), trigger)
	p.logger.Debug("regenerate: trigger=%s mode=%q slots=%d", trigger, p.rawMode, len(resp.Slots))
}

// refreshInLocked секунды до ближайшей перегенерации с запасом в секунду,
// чтобы перезагрузка страницы пришлась после тика таймера
func (p *Page) refreshInLocked() int {
	remaining := p.regeneratedAt.Add(p.opts.RefreshInterval).Sub(p.timeProvider.Now())
	seconds := int((remaining+time.Second-1)/time.Second) + 1
	if seconds < 1 {
		return 1
	}
	return seconds
}

func (p *Page) formatTime(t time.Time) string {
	return t.In(p.opts.Location).Format(domain.TimeFormat)
}
