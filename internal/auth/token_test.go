package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Generate("admin", 3)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, 3, claims.Epoch)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenExpiry(t *testing.T) {
	issued := time.Now()
	m := NewTokenManager("test-secret", time.Hour)
	m.now = func() time.Time { return issued }

	token, err := m.Generate("admin", 0)
	assert.NoError(t, err)

	t.Run("AcceptedJustAfterIssue", func(t *testing.T) {
		m.now = func() time.Time { return issued.Add(time.Second) }
		claims, err := m.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("RejectedJustAfterExpiry", func(t *testing.T) {
		m.now = func() time.Time { return issued.Add(time.Hour + time.Second) }
		_, err := m.Parse(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Generate("admin", 0)
	assert.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	_, err := m.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
