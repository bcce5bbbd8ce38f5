package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Fire-Devils/filaman-system/config"
	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
	domainerrors "github.com/Fire-Devils/filaman-system/internal/domain/errors"
	"github.com/Fire-Devils/filaman-system/internal/domain/repository"
	"github.com/Fire-Devils/filaman-system/internal/domain/service"
	mockRepo "github.com/Fire-Devils/filaman-system/internal/mocks/repository"
	mockSvc "github.com/Fire-Devils/filaman-system/internal/mocks/service"
	"github.com/Fire-Devils/filaman-system/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	hasher *mockSvc.MockPasswordHasher,
	tokens *mockSvc.MockTokenService,
) usecase.AuthUsecase {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{
		SessionTTL:         30 * 24 * time.Hour,
		SessionRenewWithin: 15 * 24 * time.Hour,
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
}

func TestAuthService_AuthenticateSession_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()
	session := &entity.Session{
		ID:         3,
		UserID:     7,
		SecretHash: "hashed",
		ExpiresAt:  time.Now().UTC().Add(20 * 24 * time.Hour),
	}
	user := &entity.User{ID: 7, Email: "jo@example.com", DisplayName: "Jo", IsActive: true}

	tokens.EXPECT().Decode("sess.3.secret").
		Return(service.Credential{Scheme: service.SchemeSession, EntityID: 3, Secret: "secret"}, true)
	hasher.EXPECT().Check("secret", "hashed").Return(true)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockSessionRepo.EXPECT().FindSessionByID(ctx, int64(3)).Return(session, nil)
			mockUserRepo.EXPECT().FindUserByID(ctx, int64(7)).Return(user, nil)
			mockSessionRepo.EXPECT().
				TouchSession(ctx, int64(3), mock.AnythingOfType("time.Time"), (*time.Time)(nil)).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	principal, err := svc.AuthenticateSession(ctx, "sess.3.secret")

	require.NoError(t, err)
	assert.Equal(t, entity.AuthTypeSession, principal.AuthType)
	assert.Equal(t, int64(7), principal.UserID)
	assert.Equal(t, int64(3), principal.SessionID)
	assert.Equal(t, "jo@example.com", principal.Email)
	assert.False(t, principal.NeedsCookieExtension)
}

func TestAuthService_AuthenticateSession_RenewsNearExpiry(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()
	session := &entity.Session{
		ID:         3,
		UserID:     7,
		SecretHash: "hashed",
		ExpiresAt:  time.Now().UTC().Add(10 * 24 * time.Hour),
	}
	user := &entity.User{ID: 7, IsActive: true}

	tokens.EXPECT().Decode("sess.3.secret").
		Return(service.Credential{Scheme: service.SchemeSession, EntityID: 3, Secret: "secret"}, true)
	hasher.EXPECT().Check("secret", "hashed").Return(true)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockSessionRepo.EXPECT().FindSessionByID(ctx, int64(3)).Return(session, nil)
			mockUserRepo.EXPECT().FindUserByID(ctx, int64(7)).Return(user, nil)
			mockSessionRepo.EXPECT().
				TouchSession(ctx, int64(3), mock.AnythingOfType("time.Time"), mock.MatchedBy(func(expiresAt *time.Time) bool {
					return expiresAt != nil && expiresAt.After(time.Now().UTC().Add(29*24*time.Hour))
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	principal, err := svc.AuthenticateSession(ctx, "sess.3.secret")

	require.NoError(t, err)
	assert.True(t, principal.NeedsCookieExtension)
}

func TestAuthService_AuthenticateSession_RevokedRejected(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()
	revokedAt := time.Now().UTC().Add(-time.Hour)
	session := &entity.Session{
		ID:         3,
		UserID:     7,
		SecretHash: "hashed",
		ExpiresAt:  time.Now().UTC().Add(20 * 24 * time.Hour),
		RevokedAt:  &revokedAt,
	}

	tokens.EXPECT().Decode("sess.3.secret").
		Return(service.Credential{Scheme: service.SchemeSession, EntityID: 3, Secret: "secret"}, true)

	// The secret is never checked for a revoked session.
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindSessionByID(ctx, int64(3)).Return(session, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrRejectedCredential)

	principal, err := svc.AuthenticateSession(ctx, "sess.3.secret")

	assert.ErrorIs(t, err, domainerrors.ErrRejectedCredential)
	assert.Nil(t, principal)
}

func TestAuthService_AuthenticateSession_WrongSchemeRejected(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	tokens.EXPECT().Decode("uak.3.secret").
		Return(service.Credential{Scheme: service.SchemeAPIKey, EntityID: 3, Secret: "secret"}, true)

	principal, err := svc.AuthenticateSession(context.Background(), "uak.3.secret")

	assert.ErrorIs(t, err, domainerrors.ErrRejectedCredential)
	assert.Nil(t, principal)
}

func TestAuthService_AuthenticateSession_MalformedTokenRejected(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	tokens.EXPECT().Decode("garbage").Return(service.Credential{}, false)

	principal, err := svc.AuthenticateSession(context.Background(), "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrRejectedCredential)
	assert.Nil(t, principal)
}

func TestAuthService_AuthenticateSession_WrongSecretRejected(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()
	session := &entity.Session{
		ID:         3,
		UserID:     7,
		SecretHash: "hashed",
		ExpiresAt:  time.Now().UTC().Add(20 * 24 * time.Hour),
	}

	tokens.EXPECT().Decode("sess.3.wrong").
		Return(service.Credential{Scheme: service.SchemeSession, EntityID: 3, Secret: "wrong"}, true)
	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindSessionByID(ctx, int64(3)).Return(session, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrRejectedCredential)

	_, err := svc.AuthenticateSession(ctx, "sess.3.wrong")

	assert.ErrorIs(t, err, domainerrors.ErrRejectedCredential)
}

func TestAuthService_AuthenticateSession_InactiveUserRejected(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()
	session := &entity.Session{
		ID:         3,
		UserID:     7,
		SecretHash: "hashed",
		ExpiresAt:  time.Now().UTC().Add(20 * 24 * time.Hour),
	}
	user := &entity.User{ID: 7, IsActive: false}

	tokens.EXPECT().Decode("sess.3.secret").
		Return(service.Credential{Scheme: service.SchemeSession, EntityID: 3, Secret: "secret"}, true)
	hasher.EXPECT().Check("secret", "hashed").Return(true)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockSessionRepo.EXPECT().FindSessionByID(ctx, int64(3)).Return(session, nil)
			mockUserRepo.EXPECT().FindUserByID(ctx, int64(7)).Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrRejectedCredential)

	_, err := svc.AuthenticateSession(ctx, "sess.3.secret")

	assert.ErrorIs(t, err, domainerrors.ErrRejectedCredential)
}

func TestAuthService_AuthenticateSession_RepositoryError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()

	tokens.EXPECT().Decode("sess.3.secret").
		Return(service.Credential{Scheme: service.SchemeSession, EntityID: 3, Secret: "secret"}, true)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindSessionByID(ctx, int64(3)).Return(nil, assert.AnError)

			_ = fn(mockFactory)
		}).
		Return(assert.AnError)

	_, err := svc.AuthenticateSession(ctx, "sess.3.secret")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrRejectedCredential)
}

func TestAuthService_AuthenticateAPIKey_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()
	apiKey := &entity.APIKey{ID: 5, UserID: 7, SecretHash: "hashed", Scopes: []string{"spools:read"}}
	user := &entity.User{ID: 7, Email: "jo@example.com", IsActive: true}

	tokens.EXPECT().Decode("uak.5.secret").
		Return(service.Credential{Scheme: service.SchemeAPIKey, EntityID: 5, Secret: "secret"}, true)
	hasher.EXPECT().Check("secret", "hashed").Return(true)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAPIKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().APIKeyRepo().Return(mockAPIKeyRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockAPIKeyRepo.EXPECT().FindAPIKeyByID(ctx, int64(5)).Return(apiKey, nil)
			mockUserRepo.EXPECT().FindUserByID(ctx, int64(7)).Return(user, nil)
			mockAPIKeyRepo.EXPECT().TouchAPIKey(ctx, int64(5), mock.AnythingOfType("time.Time")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	principal, err := svc.AuthenticateAPIKey(ctx, "uak.5.secret")

	require.NoError(t, err)
	assert.Equal(t, entity.AuthTypeAPIKey, principal.AuthType)
	assert.Equal(t, int64(7), principal.UserID)
	assert.Equal(t, int64(5), principal.APIKeyID)
	assert.Equal(t, []string{"spools:read"}, principal.Scopes)
}

func TestAuthService_AuthenticateDevice_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()
	device := &entity.Device{ID: 11, TokenHash: "hashed", IsActive: true, Scopes: []string{"devices:report"}}

	tokens.EXPECT().Decode("dev.11.secret").
		Return(service.Credential{Scheme: service.SchemeDevice, EntityID: 11, Secret: "secret"}, true)
	hasher.EXPECT().Check("secret", "hashed").Return(true)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().DeviceRepo().Return(mockDeviceRepo)

			mockDeviceRepo.EXPECT().FindDeviceByID(ctx, int64(11)).Return(device, nil)
			mockDeviceRepo.EXPECT().TouchDevice(ctx, int64(11), mock.AnythingOfType("time.Time")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	principal, err := svc.AuthenticateDevice(ctx, "dev.11.secret")

	require.NoError(t, err)
	assert.Equal(t, entity.AuthTypeDevice, principal.AuthType)
	assert.Equal(t, int64(11), principal.DeviceID)
	assert.Equal(t, []string{"devices:report"}, principal.Scopes)
}

func TestAuthService_AuthenticateDevice_InactiveRejected(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()
	device := &entity.Device{ID: 11, TokenHash: "hashed", IsActive: false}

	tokens.EXPECT().Decode("dev.11.secret").
		Return(service.Credential{Scheme: service.SchemeDevice, EntityID: 11, Secret: "secret"}, true)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().DeviceRepo().Return(mockDeviceRepo)
			mockDeviceRepo.EXPECT().FindDeviceByID(ctx, int64(11)).Return(device, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrRejectedCredential)

	_, err := svc.AuthenticateDevice(ctx, "dev.11.secret")

	assert.ErrorIs(t, err, domainerrors.ErrRejectedCredential)
}

func TestAuthService_Login_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "jo@example.com", PasswordHash: "pw-hash", IsActive: true}

	tokens.EXPECT().GenerateSecret().Return("session-secret", nil).Once()
	tokens.EXPECT().GenerateSecret().Return("csrf-secret", nil).Once()
	hasher.EXPECT().Hash("session-secret").Return("secret-hash", nil)
	hasher.EXPECT().Check("hunter2", "pw-hash").Return(true)
	tokens.EXPECT().Encode(service.SchemeSession, int64(42), "session-secret").Return("sess.42.session-secret")

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockUserRepo.EXPECT().FindUserByEmail(ctx, "jo@example.com").Return(user, nil)
			mockSessionRepo.EXPECT().
				CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(ctx context.Context, session *entity.Session) {
					session.ID = 42
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "jo@example.com", Password: "hunter2"})

	require.NoError(t, err)
	assert.Equal(t, "sess.42.session-secret", output.Token)
	assert.Equal(t, "csrf-secret", output.CSRFToken)
	assert.Equal(t, int64(42), output.Session.ID)
	assert.Equal(t, "secret-hash", output.Session.SecretHash)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "jo@example.com", PasswordHash: "pw-hash", IsActive: true}

	tokens.EXPECT().GenerateSecret().Return("session-secret", nil).Once()
	tokens.EXPECT().GenerateSecret().Return("csrf-secret", nil).Once()
	hasher.EXPECT().Hash("session-secret").Return("secret-hash", nil)
	hasher.EXPECT().Check("wrong", "pw-hash").Return(false)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindUserByEmail(ctx, "jo@example.com").Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidCredentials)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "jo@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()

	tokens.EXPECT().GenerateSecret().Return("session-secret", nil).Once()
	tokens.EXPECT().GenerateSecret().Return("csrf-secret", nil).Once()
	hasher.EXPECT().Hash("session-secret").Return("secret-hash", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindUserByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidCredentials)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "hunter2"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Logout_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().RevokeSession(ctx, int64(3), mock.AnythingOfType("time.Time")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := svc.Logout(ctx, 3)

	require.NoError(t, err)
}

func TestAuthService_Logout_AlreadyRevokedIsIdempotent(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := newTestAuthService(t, txManager, hasher, tokens)

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().
				RevokeSession(ctx, int64(3), mock.AnythingOfType("time.Time")).
				Return(repository.ErrSessionNotFound)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := svc.Logout(ctx, 3)

	require.NoError(t, err)
}
