package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
)

// IntVar извлекает целочисленную переменную пути
func IntVar(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

// RedirectToPage возвращает браузер на страницу бронирования с текущим режимом (POST-redirect-GET)
func RedirectToPage(w http.ResponseWriter, r *http.Request, mode string) {
	target := "/"
	if mode != "" {
		target += "?" + url.Values{"mode": {mode}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
