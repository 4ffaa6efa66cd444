package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	m := NewManager("secret-token", time.Hour)
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	session, err := m.Login("secret-token", now)
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, now, session.IssuedAt)
	assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)
}

func TestLogin_InvalidToken(t *testing.T) {
	m := NewManager("secret-token", time.Hour)

	for _, token := range []string{"", "wrong", "secret-token "} {
		_, err := m.Login(token, time.Now())
		assert.ErrorIs(t, err, ErrInvalidCredentials, "token %q", token)
	}
}

func TestLogin_IssuesDistinctTokens(t *testing.T) {
	m := NewManager("secret-token", time.Hour)
	now := time.Now()

	first, err := m.Login("secret-token", now)
	require.NoError(t, err)
	second, err := m.Login("secret-token", now)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestValidate(t *testing.T) {
	m := NewManager("secret-token", time.Hour)
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	session, err := m.Login("secret-token", now)
	require.NoError(t, err)

	got, err := m.Validate(session.Token, now.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, session.Token, got.Token)
}

func TestValidate_UnknownToken(t *testing.T) {
	m := NewManager("secret-token", time.Hour)

	_, err := m.Validate("never-issued", time.Now())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager("secret-token", time.Hour)
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	session, err := m.Login("secret-token", now)
	require.NoError(t, err)

	// Ровно в момент истечения сессия уже недействительна
	_, err = m.Validate(session.Token, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrSessionExpired)

	// Просроченная сессия удалена и дальше не валидируется
	_, err = m.Validate(session.Token, now)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRevoke(t *testing.T) {
	m := NewManager("secret-token", time.Hour)
	now := time.Now()

	session, err := m.Login("secret-token", now)
	require.NoError(t, err)

	m.Revoke(session.Token)

	_, err = m.Validate(session.Token, now)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionContext(t *testing.T) {
	session := &Session{Token: "abc"}

	ctx := WithSession(context.Background(), session)
	got, ok := SessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, session, got)

	_, ok = SessionFromContext(context.Background())
	assert.False(t, ok)
}
