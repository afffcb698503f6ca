package page

import "time"

// Options параметры страницы
type Options struct {
	RefreshInterval time.Duration
	Location        *time.Location // часовой пояс отображения времени
}

// View модель отображения страницы
type View struct {
	Mode         string            `json:"mode"`
	Icon         string            `json:"icon"`
	Color        string            `json:"color"`
	Title        string            `json:"title"`
	CurrentTime  string            `json:"currentTime"`
	RefreshIn    int               `json:"refreshIn"` // секунды до следующей перегенерации
	Slots        []SlotView        `json:"slots"`
	Contact      *ContactView      `json:"contact,omitempty"`
	Confirmation *ConfirmationView `json:"confirmation,omitempty"`
	Prompt       *PromptView       `json:"prompt,omitempty"`
}

// SlotView карточка слота
type SlotView struct {
	ID           int               `json:"id"`
	Time         string            `json:"time"`
	Status       string            `json:"status"`
	FullStatus   bool              `json:"fullStatus"`
	Active       bool              `json:"active"`
	Expired      bool              `json:"expired"`
	Closed       bool              `json:"closed"` // закрыт или заполнен
	Participants []ParticipantChip `json:"participants"`
	Actions      ActionsView       `json:"actions"`
}

// CardClass css классы карточки
func (s SlotView) CardClass() string {
	class := "slot-card"
	if s.Active {
		class += " active"
	}
	if s.Expired {
		class += " expired"
	}
	if s.Closed {
		class += " closed"
	}
	return class
}

// ParticipantChip кликабельное имя участника в карточке
type ParticipantChip struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// ActionsView состояние кнопок карточки
type ActionsView struct {
	BookLabel      string `json:"bookLabel"`
	BookDisabled   bool   `json:"bookDisabled"`
	ShowClose      bool   `json:"showClose"`
	CloseDisabled  bool   `json:"closeDisabled"`
	ShowReopen     bool   `json:"showReopen"`
	ReopenDisabled bool   `json:"reopenDisabled"`
}

// ContactView содержимое модального окна контакта
type ContactView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Initial string `json:"initial"`
	Contact string `json:"contact"`
	Rating  string `json:"rating"` // один знак после запятой
	Trips   int    `json:"trips"`
}

// ConfirmationView баннер подтверждения бронирования
type ConfirmationView struct {
	Time    string `json:"time"`
	Message string `json:"message"`
}

// PromptView открытый вопрос подтверждения
type PromptView struct {
	Action  string `json:"action"`
	SlotID  int    `json:"slotId"`
	Message string `json:"message"`
}
