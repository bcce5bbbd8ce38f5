package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsValid(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid session", func(t *testing.T) {
		session := &Session{ExpiresAt: now.Add(time.Hour)}
		assert.True(t, session.IsValid(now))
	})

	t.Run("expired session", func(t *testing.T) {
		session := &Session{ExpiresAt: now.Add(-time.Hour)}
		assert.False(t, session.IsValid(now))
	})

	t.Run("revoked session with future expiry", func(t *testing.T) {
		revokedAt := now.Add(-time.Minute)
		session := &Session{ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt}
		assert.False(t, session.IsValid(now))
	})
}

func TestSession_NeedsRenewal(t *testing.T) {
	now := time.Now().UTC()
	renewWithin := 15 * 24 * time.Hour

	t.Run("inside renewal window", func(t *testing.T) {
		session := &Session{ExpiresAt: now.Add(10 * 24 * time.Hour)}
		assert.True(t, session.NeedsRenewal(now, renewWithin))
	})

	t.Run("outside renewal window", func(t *testing.T) {
		session := &Session{ExpiresAt: now.Add(20 * 24 * time.Hour)}
		assert.False(t, session.NeedsRenewal(now, renewWithin))
	})

	t.Run("already expired still counts as needing renewal", func(t *testing.T) {
		session := &Session{ExpiresAt: now.Add(-time.Hour)}
		assert.True(t, session.NeedsRenewal(now, renewWithin))
	})
}

func TestSession_Renew(t *testing.T) {
	now := time.Now().UTC()
	ttl := 30 * 24 * time.Hour
	session := &Session{ExpiresAt: now.Add(5 * 24 * time.Hour)}

	session.Renew(now, ttl)

	assert.Equal(t, now.Add(ttl), session.ExpiresAt)
}
