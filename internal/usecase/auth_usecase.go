// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued session credential after a successful login.
// Token is the encoded session token placed in the session_id cookie;
// CSRFToken seeds the double-submit csrf_token cookie.
type LoginOutput struct {
	Token     string
	CSRFToken string
	Session   *entity.Session
	User      *entity.User
}

// AuthUsecase defines the interface for credential resolution and the
// session lifecycle. This is the contract the delivery layer depends on.
//
// Each Authenticate method resolves a raw token of one credential scheme
// into a Principal. All rejection causes (malformed token, wrong scheme,
// unknown entity, failed verification, expired or revoked record) collapse
// into the same rejection error so callers cannot distinguish them.
type AuthUsecase interface {
	// AuthenticateSession resolves a session_id cookie token. On success the
	// session's last-used timestamp is updated and, when its remaining
	// lifetime has dropped below the renewal window, its expiry is extended
	// and the Principal is flagged for cookie re-issuance.
	AuthenticateSession(ctx context.Context, token string) (*entity.Principal, error)

	// AuthenticateAPIKey resolves an "Authorization: ApiKey <token>" header.
	AuthenticateAPIKey(ctx context.Context, token string) (*entity.Principal, error)

	// AuthenticateDevice resolves an "Authorization: Device <token>" header.
	AuthenticateDevice(ctx context.Context, token string) (*entity.Principal, error)

	// Login verifies an email/password pair and creates a fresh session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout revokes the session backing the current principal. A revoked
	// session never resolves again.
	Logout(ctx context.Context, sessionID int64) error
}
