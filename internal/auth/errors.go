package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном админском токене
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrSessionNotFound возвращается, когда сессия не выпускалась или отозвана
	ErrSessionNotFound = errors.New("auth: session not found")

	// ErrSessionExpired возвращается, когда срок сессии истёк
	ErrSessionExpired = errors.New("auth: session expired")
)
