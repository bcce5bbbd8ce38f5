package repository

import (
	"context"

	"github.com/Fire-Devils/filaman-system/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for location-related database operations.
type LocationRepository interface {
	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id int64) (*entity.Location, error)

	// FindOtherLocationsByIdentifier retrieves every location holding the
	// identifier, excluding the given location ID when non-nil.
	FindOtherLocationsByIdentifier(ctx context.Context, identifier string, excludeID *int64) ([]*entity.Location, error)

	// AssignIdentifier sets or clears (nil) the location's RFID identifier.
	AssignIdentifier(ctx context.Context, locationID int64, identifier *string) error
}
