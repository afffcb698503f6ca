package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-RideSlotService/internal/service/page"
)

// ConfirmRequest тело запроса закрытия/переоткрытия слота
// Отсутствующий confirm оставляет вопрос открытым
type ConfirmRequest struct {
	Confirm *bool `json:"confirm"`
}

// Confirmer ответ клиента на вопрос подтверждения
func (r ConfirmRequest) Confirmer() page.Confirmer {
	switch {
	case r.Confirm == nil:
		return page.AnswerConfirmer{}
	case *r.Confirm:
		return page.AutoConfirm{}
	default:
		return page.AutoDeny{}
	}
}

// DecodeConfirm читает ConfirmRequest, пустое тело допустимо
func DecodeConfirm(r *http.Request) (ConfirmRequest, error) {
	var req ConfirmRequest
	if err := DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// FormConfirmer ответ из поля формы confirm=yes|no
func FormConfirmer(r *http.Request) page.Confirmer {
	return page.AnswerConfirmer{Answer: r.PostFormValue("confirm")}
}
