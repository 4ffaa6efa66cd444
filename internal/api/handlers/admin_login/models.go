package admin_login

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/auth"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Token string `json:"token"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	SessionToken string `json:"sessionToken"`
	ExpiresAt    string `json:"expiresAt"` // ISO 8601
}

// FromSession конвертирует сессию в HTTP response
func FromSession(session *auth.Session) *LoginResponse {
	return &LoginResponse{
		SessionToken: session.Token,
		ExpiresAt:    session.ExpiresAt.Format(time.RFC3339),
	}
}
