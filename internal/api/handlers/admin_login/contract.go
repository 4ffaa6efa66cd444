package admin_login

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/auth"
)

type SessionIssuer interface {
	Login(adminToken string, now time.Time) (*auth.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
