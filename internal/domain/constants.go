package domain

import "time"

// Slot generation defaults
const (
	DefaultBatchSize       = 6
	DefaultSlotStep        = 10 * time.Minute
	DefaultRefreshInterval = 60 * time.Second
)

// Time format constants
const (
	TimeFormat = "03:04 PM" // HH:MM, 12-hour with AM/PM marker
)

// Slot status texts
const (
	StatusClosed     = "Closed"
	StatusFull       = "Full - Booking Closed"
	StatusExpired    = "Expired"
	StatusSpotsLeftF = "%s spots left"
)

// Action labels
const (
	LabelBookNow  = "Book Now"
	LabelSlotFull = "Slot Full"
	LabelClose    = "Close Slot"
	LabelReopen   = "Reopen Slot"
)

// Confirmation prompts
const (
	PromptCloseSlot  = "Are you sure you want to close this slot?"
	PromptReopenSlot = "Do you want to reopen this slot?"
)

// ArrivalReminder текст под подтверждением бронирования
const ArrivalReminder = "Please arrive 5 minutes before the scheduled time."
