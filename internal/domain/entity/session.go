package entity

import "time"

// Session represents a browser login backed by the session_id cookie.
// Only a bcrypt hash of the cookie secret is stored.
type Session struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	SecretHash string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsValid reports whether the session may still resolve to a principal.
// A revoked session stays invalid even when the secret matches.
func (s *Session) IsValid(now time.Time) bool {
	if s.RevokedAt != nil {
		return false
	}

	return s.ExpiresAt.After(now)
}

// NeedsRenewal implements the rolling-expiry decision: a session is renewed
// when its remaining lifetime drops below the renewal window. Pure function
// of (ExpiresAt, now) so the policy is testable without an HTTP context.
func (s *Session) NeedsRenewal(now time.Time, renewWithin time.Duration) bool {
	return s.ExpiresAt.Sub(now) < renewWithin
}

// Renew extends the session lifetime from now. The caller persists the
// change and re-issues the cookie.
func (s *Session) Renew(now time.Time, ttl time.Duration) {
	s.ExpiresAt = now.Add(ttl)
}
