package entity

// AuthType identifies which credential scheme resolved the request.
type AuthType string

const (
	AuthTypeSession AuthType = "session"
	AuthTypeAPIKey  AuthType = "api_key"
	AuthTypeDevice  AuthType = "device"
)

// Principal is the identity resolved for the current request. It is built
// fresh on every successful resolution and never persisted.
type Principal struct {
	AuthType AuthType `json:"auth_type"`

	// User identity, set for session and api_key principals.
	UserID       int64  `json:"user_id,omitempty"`
	IsSuperadmin bool   `json:"is_superadmin,omitempty"`
	Email        string `json:"email,omitempty"`
	DisplayName  string `json:"display_name,omitempty"`
	Language     string `json:"language,omitempty"`

	// Backing credential ids, one of which is set depending on AuthType.
	SessionID int64 `json:"session_id,omitempty"`
	APIKeyID  int64 `json:"api_key_id,omitempty"`
	DeviceID  int64 `json:"device_id,omitempty"`

	// Scopes granted to api_key and device principals.
	Scopes []string `json:"scopes,omitempty"`

	// NeedsCookieExtension marks a session principal whose rolling expiry
	// was extended; the delivery layer re-issues the cookie on the response.
	NeedsCookieExtension bool `json:"-"`
}
