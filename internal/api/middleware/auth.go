package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/auth"
)

// SessionCookieName имя cookie с токеном админской сессии
const SessionCookieName = "venue_admin_session"

// SessionValidator интерфейс проверки админских сессий
type SessionValidator interface {
	Validate(token string, now time.Time) (*auth.Session, error)
}

// AdminAuth проверяет наличие действительной админской сессии
// Токен берётся из cookie или заголовка Authorization: Bearer
// Валидная сессия кладётся в контекст запроса
func AdminAuth(sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, "требуется админская сессия")
				return
			}

			session, err := sessions.Validate(token, time.Now())
			if err != nil {
				handlers.RespondUnauthorized(w, "сессия недействительна или истекла")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		})
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}
