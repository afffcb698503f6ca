package page

import "errors"

var (
	// ErrParticipantNotFound возвращается, когда участника нет в справочнике
	ErrParticipantNotFound = errors.New("page: participant not found")

	// ErrNotMounted возвращается при действии над размонтированной страницей
	ErrNotMounted = errors.New("page: not mounted")
)
