package repository

import (
	"context"
	"time"

	"github.com/Fire-Devils/filaman-system/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a session is not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the interface for session-related database operations.
type SessionRepository interface {
	// CreateSession persists a new session and fills in its generated ID.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByID retrieves a session by its unique ID.
	FindSessionByID(ctx context.Context, id int64) (*entity.Session, error)

	// TouchSession updates the last-used timestamp and, when expiresAt is
	// non-nil, the rolling expiry in the same statement.
	TouchSession(ctx context.Context, id int64, lastUsedAt time.Time, expiresAt *time.Time) error

	// RevokeSession marks a session revoked. Revoked sessions never resolve
	// to a principal again.
	RevokeSession(ctx context.Context, id int64, revokedAt time.Time) error
}
