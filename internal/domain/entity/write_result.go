package entity

import "time"

// WriteStatus is the closed set of states a tag-write command can be in.
type WriteStatus string

const (
	// WriteStatusNone means no command has ever been issued to the device.
	WriteStatusNone WriteStatus = "none"
	// WriteStatusPending is recorded before the command is dispatched, so a
	// client polling right after triggering never observes stale state.
	WriteStatusPending WriteStatus = "pending"
	WriteStatusSuccess WriteStatus = "success"
	WriteStatusError   WriteStatus = "error"
)

// WriteResult is the persisted outcome of the most recent tag-write command.
// It is always read and written as a whole, never field-patched, so two
// racing callbacks cannot interleave partial updates.
type WriteResult struct {
	Status       WriteStatus `json:"status"`
	TagID        string      `json:"tag_id,omitempty"`
	ErrorMessage string      `json:"error_message,omitempty"`

	// RemovedFrom notes which other records lost the tag during
	// deduplication, e.g. "spool #3, location 'Shelf A'".
	RemovedFrom string    `json:"removed_from,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
