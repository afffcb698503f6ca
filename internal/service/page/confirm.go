package page

import "github.com/m04kA/SMC-RideSlotService/internal/domain"

// Action actions that require confirmation
type Action string

const (
	ActionClose  Action = "close"
	ActionReopen Action = "reopen"
)

// Prompt a yes/no question shown before a close or reopen
type Prompt struct {
	Action  Action
	SlotID  int
	Message string

	// Open is true when the same question is already pending on the page
	Open bool
}

func (p Prompt) sameQuestion(other *Prompt) bool {
	return other != nil && other.Action == p.Action && other.SlotID == p.SlotID
}

func closePrompt(id int) Prompt {
	return Prompt{Action: ActionClose, SlotID: id, Message: domain.PromptCloseSlot}
}

func reopenPrompt(id int) Prompt {
	return Prompt{Action: ActionReopen, SlotID: id, Message: domain.PromptReopenSlot}
}

// Decision answer of a Confirmer
type Decision int

const (
	// Declined the action must not happen
	Declined Decision = iota
	// Confirmed the action proceeds
	Confirmed
	// Pending the question has not been answered yet; the page keeps the prompt open
	Pending
)

// AutoConfirm confirms every prompt
type AutoConfirm struct{}

func (AutoConfirm) Confirm(Prompt) Decision { return Confirmed }

// AutoDeny declines every prompt
type AutoDeny struct{}

func (AutoDeny) Confirm(Prompt) Decision { return Declined }

// AnswerConfirmer resolves prompts from a submitted answer.
// "yes" confirms, "no" declines, an empty answer leaves the prompt pending.
// An answer counts only for the prompt that is pending on the page; otherwise
// the question is asked again.
type AnswerConfirmer struct {
	Answer string
}

func (c AnswerConfirmer) Confirm(prompt Prompt) Decision {
	if !prompt.Open {
		return Pending
	}

	switch c.Answer {
	case "yes", "true":
		return Confirmed
	case "":
		return Pending
	default:
		return Declined
	}
}
