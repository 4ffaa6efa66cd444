package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Session выпущенная админская сессия
// Жизненный цикл: issued -> valid -> expired/revoked
type Session struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Valid сообщает, действительна ли сессия на указанный момент
func (s *Session) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

// Manager выпускает и проверяет админские сессии
//
// Сессия - явный объект, передаваемый через контекст запроса в каждую
// админскую операцию. Никакого process-wide кэшированного клиента
type Manager struct {
	adminToken string
	ttl        time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager создает менеджер сессий с заданным админским токеном и TTL
func NewManager(adminToken string, ttl time.Duration) *Manager {
	return &Manager{
		adminToken: adminToken,
		ttl:        ttl,
		sessions:   make(map[string]*Session),
	}
}

// Login проверяет админский токен и выпускает новую сессию
// Сравнение токена - за постоянное время
func (m *Manager) Login(adminToken string, now time.Time) (*Session, error) {
	if subtle.ConstantTimeCompare([]byte(adminToken), []byte(m.adminToken)) != 1 {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("auth: failed to generate session token: %w", err)
	}

	session := &Session{
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[token] = session
	m.mu.Unlock()

	return session, nil
}

// Validate проверяет сессию по токену
// Просроченная сессия удаляется и больше не валидируется
func (m *Manager) Validate(token string, now time.Time) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if !session.Valid(now) {
		m.Revoke(token)
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Revoke отзывает сессию
func (m *Manager) Revoke(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Контекст сессии

type ctxKey int

const sessionKey ctxKey = iota

// WithSession кладет сессию в контекст запроса
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext достает сессию из контекста запроса
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionKey).(*Session)
	return session, ok
}
