package entity

import "time"

// Device represents an RFID scale on the local network. Devices register
// once with a one-time code, then authenticate with a hashed token.
type Device struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	TokenHash  string     `json:"-"`
	DeviceCode *string    `json:"-"`
	IsActive   bool       `json:"is_active"`
	Scopes     []string   `json:"scopes"`
	IPAddress  string     `json:"ip_address"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`

	// LastWriteResult records the outcome of the most recent tag-write
	// command. Nil until the first command is issued.
	LastWriteResult *WriteResult `json:"last_write_result,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"-"`
}

// CanAuthenticate reports whether a token for this device may resolve to a
// principal.
func (d *Device) CanAuthenticate() bool {
	return d.IsActive && d.DeletedAt == nil
}

// Reachable reports whether the device can be sent a command.
func (d *Device) Reachable() bool {
	return d.CanAuthenticate() && d.IPAddress != ""
}
