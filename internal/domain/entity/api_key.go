package entity

import "time"

// APIKey represents a long-lived programmatic credential for a user.
// Unlike sessions, API keys carry no expiry and no rolling renewal.
type APIKey struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Name       string     `json:"name"`
	SecretHash string     `json:"-"`
	Scopes     []string   `json:"scopes"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
