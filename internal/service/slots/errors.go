package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слота с таким id нет в текущей пачке
	ErrSlotNotFound = errors.New("slots: slot not found")

	// ErrParticipantNotFound возвращается, когда в слоте нет участника с таким индексом
	ErrParticipantNotFound = errors.New("slots: participant not found")

	// ErrSlotExpired возвращается при попытке забронировать слот, который уже начался
	ErrSlotExpired = errors.New("slots: slot expired")

	// ErrSlotFull возвращается при попытке забронировать заполненный слот
	ErrSlotFull = errors.New("slots: slot is full")

	// ErrSlotClosed возвращается при попытке забронировать закрытый слот
	ErrSlotClosed = errors.New("slots: slot is closed")
)
