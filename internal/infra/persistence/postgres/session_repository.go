package postgres

import (
	"context"
	"time"

	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
	"github.com/Fire-Devils/filaman-system/internal/domain/repository"
	"github.com/Fire-Devils/filaman-system/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// CreateSession persists a new session and fills in its generated ID.
func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindSessionByID retrieves a session by its unique ID.
func (repo *sessionRepository) FindSessionByID(ctx context.Context, id int64) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by ID")
	}

	return toSessionDomain(&sessionM), nil
}

// TouchSession updates the last-used timestamp and, when expiresAt is
// non-nil, the rolling expiry in the same statement.
func (repo *sessionRepository) TouchSession(ctx context.Context, id int64, lastUsedAt time.Time, expiresAt *time.Time) error {
	values := map[string]any{"last_used_at": lastUsedAt}
	if expiresAt != nil {
		values["expires_at"] = *expiresAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", id).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// RevokeSession marks a session revoked.
func (repo *sessionRepository) RevokeSession(ctx context.Context, id int64, revokedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", revokedAt)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to revoke session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:         data.ID,
		UserID:     data.UserID,
		SecretHash: data.SecretHash,
		ExpiresAt:  data.ExpiresAt,
		RevokedAt:  data.RevokedAt,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:         data.ID,
		UserID:     data.UserID,
		SecretHash: data.SecretHash,
		ExpiresAt:  data.ExpiresAt,
		RevokedAt:  data.RevokedAt,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
	}
}
