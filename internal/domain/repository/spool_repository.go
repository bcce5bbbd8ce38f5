package repository

import (
	"context"

	"github.com/Fire-Devils/filaman-system/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSpoolNotFound is returned when a spool is not found.
var ErrSpoolNotFound = errors.New("spool not found")

// SpoolRepository defines the interface for spool-related database operations.
type SpoolRepository interface {
	// FindSpoolByID retrieves a spool by its unique ID.
	FindSpoolByID(ctx context.Context, id int64) (*entity.Spool, error)

	// FindActiveSpoolByTag retrieves the active spool currently holding the
	// given RFID tag, if any.
	FindActiveSpoolByTag(ctx context.Context, tagID string) (*entity.Spool, error)

	// FindOtherActiveSpoolsByTag retrieves every active spool holding the tag,
	// excluding the given spool ID when non-nil. Used for deduplication.
	FindOtherActiveSpoolsByTag(ctx context.Context, tagID string, excludeID *int64) ([]*entity.Spool, error)

	// AssignTag sets or clears (nil) the spool's RFID tag.
	AssignTag(ctx context.Context, spoolID int64, tagID *string) error

	// UpdateRemainingWeight records a fresh weight measurement for the spool.
	UpdateRemainingWeight(ctx context.Context, spoolID int64, grams float64) error
}
