package entity

import "time"

// Location represents a storage place (shelf, drybox) that may carry an
// RFID identifier shared with no other location or active spool.
type Location struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Identifier *string   `json:"identifier,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
