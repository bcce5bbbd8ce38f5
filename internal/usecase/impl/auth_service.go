// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/Fire-Devils/filaman-system/config"
	deliverycontext "github.com/Fire-Devils/filaman-system/internal/delivery/context"
	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
	domainerrors "github.com/Fire-Devils/filaman-system/internal/domain/errors"
	"github.com/Fire-Devils/filaman-system/internal/domain/repository"
	"github.com/Fire-Devils/filaman-system/internal/domain/service"
	"github.com/Fire-Devils/filaman-system/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager          repository.TransactionManager
	hasher             service.PasswordHasher
	tokenService       service.TokenService
	sessionTTL         time.Duration
	sessionRenewWithin time.Duration
	logger             *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:          params.TxManager,
		hasher:             params.Hasher,
		tokenService:       params.TokenService,
		sessionTTL:         params.Config.Auth.SessionTTL,
		sessionRenewWithin: params.Config.Auth.SessionRenewWithin,
		logger:             params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AuthenticateSession resolves a session cookie token into a principal.
// The read-check-update sequence runs in one transaction so a concurrent
// revocation is never missed once validation has passed.
func (srv *authService) AuthenticateSession(ctx context.Context, token string) (*entity.Principal, error) {
	cred, ok := srv.tokenService.Decode(token)
	if !ok || cred.Scheme != service.SchemeSession {
		return nil, domainerrors.ErrRejectedCredential
	}

	var principal *entity.Principal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		now := time.Now().UTC()

		session, err := repoFactory.SessionRepo().FindSessionByID(ctx, cred.EntityID)
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrRejectedCredential
		}
		if err != nil {
			return errors.Wrap(err, "failed to find session")
		}

		if !session.IsValid(now) {
			return domainerrors.ErrRejectedCredential
		}

		if !srv.hasher.Check(cred.Secret, session.SecretHash) {
			return domainerrors.ErrRejectedCredential
		}

		user, err := srv.resolveUser(ctx, repoFactory, session.UserID)
		if err != nil {
			return err
		}

		needsRenewal := session.NeedsRenewal(now, srv.sessionRenewWithin)

		var expiresAt *time.Time
		if needsRenewal {
			session.Renew(now, srv.sessionTTL)
			expiresAt = &session.ExpiresAt
		}

		if err := repoFactory.SessionRepo().TouchSession(ctx, session.ID, now, expiresAt); err != nil {
			return errors.Wrap(err, "failed to touch session")
		}

		principal = &entity.Principal{
			AuthType:             entity.AuthTypeSession,
			UserID:               user.ID,
			IsSuperadmin:         user.IsSuperadmin,
			Email:                user.Email,
			DisplayName:          user.DisplayName,
			Language:             user.Language,
			SessionID:            session.ID,
			NeedsCookieExtension: needsRenewal,
		}

		return nil
	})
	if err != nil {
		return nil, srv.rejectOrFail(ctx, "session", err)
	}

	return principal, nil
}

// AuthenticateAPIKey resolves an API key token into a principal.
func (srv *authService) AuthenticateAPIKey(ctx context.Context, token string) (*entity.Principal, error) {
	cred, ok := srv.tokenService.Decode(token)
	if !ok || cred.Scheme != service.SchemeAPIKey {
		return nil, domainerrors.ErrRejectedCredential
	}

	var principal *entity.Principal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		now := time.Now().UTC()

		apiKey, err := repoFactory.APIKeyRepo().FindAPIKeyByID(ctx, cred.EntityID)
		if errors.Is(err, repository.ErrAPIKeyNotFound) {
			return domainerrors.ErrRejectedCredential
		}
		if err != nil {
			return errors.Wrap(err, "failed to find api key")
		}

		user, err := srv.resolveUser(ctx, repoFactory, apiKey.UserID)
		if err != nil {
			return err
		}

		if !srv.hasher.Check(cred.Secret, apiKey.SecretHash) {
			return domainerrors.ErrRejectedCredential
		}

		if err := repoFactory.APIKeyRepo().TouchAPIKey(ctx, apiKey.ID, now); err != nil {
			return errors.Wrap(err, "failed to touch api key")
		}

		principal = &entity.Principal{
			AuthType:     entity.AuthTypeAPIKey,
			UserID:       user.ID,
			IsSuperadmin: user.IsSuperadmin,
			Email:        user.Email,
			DisplayName:  user.DisplayName,
			Language:     user.Language,
			APIKeyID:     apiKey.ID,
			Scopes:       apiKey.Scopes,
		}

		return nil
	})
	if err != nil {
		return nil, srv.rejectOrFail(ctx, "api_key", err)
	}

	return principal, nil
}

// AuthenticateDevice resolves a device token into a principal.
func (srv *authService) AuthenticateDevice(ctx context.Context, token string) (*entity.Principal, error) {
	cred, ok := srv.tokenService.Decode(token)
	if !ok || cred.Scheme != service.SchemeDevice {
		return nil, domainerrors.ErrRejectedCredential
	}

	var principal *entity.Principal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		now := time.Now().UTC()

		device, err := repoFactory.DeviceRepo().FindDeviceByID(ctx, cred.EntityID)
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrRejectedCredential
		}
		if err != nil {
			return errors.Wrap(err, "failed to find device")
		}

		if !device.CanAuthenticate() {
			return domainerrors.ErrRejectedCredential
		}

		if !srv.hasher.Check(cred.Secret, device.TokenHash) {
			return domainerrors.ErrRejectedCredential
		}

		if err := repoFactory.DeviceRepo().TouchDevice(ctx, device.ID, now); err != nil {
			return errors.Wrap(err, "failed to touch device")
		}

		principal = &entity.Principal{
			AuthType: entity.AuthTypeDevice,
			DeviceID: device.ID,
			Scopes:   device.Scopes,
		}

		return nil
	})
	if err != nil {
		return nil, srv.rejectOrFail(ctx, "device", err)
	}

	return principal, nil
}

// Login verifies an email/password pair and creates a fresh session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	secret, err := srv.tokenService.GenerateSecret()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session secret")
	}

	csrfToken, err := srv.tokenService.GenerateSecret()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate csrf token")
	}

	secretHash, err := srv.hasher.Hash(secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash session secret")
	}

	var (
		user    *entity.User
		session *entity.Session
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		now := time.Now().UTC()

		found, err := repoFactory.UserRepo().FindUserByEmail(ctx, input.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidCredentials
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by email")
		}

		if !found.CanAuthenticate() || !srv.hasher.Check(input.Password, found.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		session = &entity.Session{
			UserID:     found.ID,
			SecretHash: secretHash,
			ExpiresAt:  now.Add(srv.sessionTTL),
			CreatedAt:  now,
		}
		if err := repoFactory.SessionRepo().CreateSession(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("userID", user.ID), slog.Int64("sessionID", session.ID))

	return &usecase.LoginOutput{
		Token:     srv.tokenService.Encode(service.SchemeSession, session.ID, secret),
		CSRFToken: csrfToken,
		Session:   session,
		User:      user,
	}, nil
}

// Logout revokes the session backing the current principal.
func (srv *authService) Logout(ctx context.Context, sessionID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		now := time.Now().UTC()

		if err := repoFactory.SessionRepo().RevokeSession(ctx, sessionID, now); err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				// Already revoked or gone, logout is idempotent.
				return nil
			}

			return errors.Wrap(err, "failed to revoke session")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute logout transaction")
	}

	srv.log(ctx).Info("Session revoked", slog.Int64("sessionID", sessionID))

	return nil
}

// resolveUser loads the user behind a session or api key and applies the
// shared validity rules.
func (srv *authService) resolveUser(ctx context.Context, repoFactory repository.RepositoryFactory, userID int64) (*entity.User, error) {
	user, err := repoFactory.UserRepo().FindUserByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrRejectedCredential
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.CanAuthenticate() {
		return nil, domainerrors.ErrRejectedCredential
	}

	return user, nil
}

// rejectOrFail keeps credential rejections quiet and logs everything else.
// The rejection cause is never surfaced to the caller.
func (srv *authService) rejectOrFail(ctx context.Context, scheme string, err error) error {
	if errors.Is(err, domainerrors.ErrRejectedCredential) {
		srv.log(ctx).Debug("Credential rejected", slog.String("scheme", scheme))

		return domainerrors.ErrRejectedCredential
	}

	srv.log(ctx).Error("Credential resolution failed", slog.String("scheme", scheme), slog.Any("error", err))

	return errors.Wrap(err, "failed to resolve credential")
}
