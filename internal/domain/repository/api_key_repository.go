package repository

import (
	"context"
	"time"

	"github.com/Fire-Devils/filaman-system/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAPIKeyNotFound is returned when an API key is not found.
var ErrAPIKeyNotFound = errors.New("api key not found")

// APIKeyRepository defines the interface for API-key-related database operations.
type APIKeyRepository interface {
	// FindAPIKeyByID retrieves an API key by its unique ID.
	FindAPIKeyByID(ctx context.Context, id int64) (*entity.APIKey, error)

	// TouchAPIKey updates the last-used timestamp.
	TouchAPIKey(ctx context.Context, id int64, lastUsedAt time.Time) error
}
