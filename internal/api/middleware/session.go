package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RideSlotService/internal/service/page"
)

type contextKey string

const pageKey contextKey = "page"

// SessionRegistry интерфейс реестра страниц
type SessionRegistry interface {
	Get(id string) (*page.Page, bool)
	Create(mode string) (string, *page.Page)
}

// Session находит страницу по cookie сессии или монтирует новую
// Новая страница получает режим из query параметра mode
func Session(registry SessionRegistry, cookieName string, maxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				p  *page.Page
				ok bool
			)

			if cookie, err := r.Cookie(cookieName); err == nil {
				p, ok = registry.Get(cookie.Value)
			}

			if !ok {
				var id string
				id, p = registry.Create(r.URL.Query().Get("mode"))
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(maxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithPage(r.Context(), p)))
		})
	}
}

// WithPage кладет страницу в контекст
func WithPage(ctx context.Context, p *page.Page) context.Context {
	return context.WithValue(ctx, pageKey, p)
}

// GetPage извлекает страницу сессии из контекста
func GetPage(ctx context.Context) (*page.Page, bool) {
	p, ok := ctx.Value(pageKey).(*page.Page)
	return p, ok && p != nil
}
