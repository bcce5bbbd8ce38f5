package entity

import "time"

// Spool represents a physical filament spool. A spool may carry at most one
// RFID tag, and a tag may be attached to at most one active spool at a time.
type Spool struct {
	ID                   int64      `json:"id"`
	FilamentName         string     `json:"filament_name,omitempty"`
	TagID                *string    `json:"tag_id,omitempty"`
	RemainingWeightGrams *float64   `json:"remaining_weight_g,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	DeletedAt            *time.Time `json:"-"`
}
