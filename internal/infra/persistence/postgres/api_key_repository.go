package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
	"github.com/Fire-Devils/filaman-system/internal/domain/repository"
	"github.com/Fire-Devils/filaman-system/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// apiKeyRepository implements the repository.APIKeyRepository interface.
type apiKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository is the constructor for apiKeyRepository.
func NewAPIKeyRepository(db *gorm.DB) repository.APIKeyRepository {
	return &apiKeyRepository{
		db: db,
	}
}

// FindAPIKeyByID retrieves an API key by its unique ID.
func (repo *apiKeyRepository) FindAPIKeyByID(ctx context.Context, id int64) (*entity.APIKey, error) {
	var keyM model.APIKeyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAPIKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find API key by ID")
	}

	return toAPIKeyDomain(&keyM), nil
}

// TouchAPIKey updates the last-used timestamp.
func (repo *apiKeyRepository) TouchAPIKey(ctx context.Context, id int64, lastUsedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.APIKeyModel{}).
		Where("id = ?", id).
		Update("last_used_at", lastUsedAt)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch API key")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAPIKeyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAPIKeyDomain converts a GORM APIKeyModel to a domain APIKey entity.
func toAPIKeyDomain(data *model.APIKeyModel) *entity.APIKey {
	if data == nil {
		return nil
	}

	var scopes []string
	if len(data.Scopes) > 0 {
		// A scopes blob that fails to decode yields an empty scope set.
		_ = json.Unmarshal(data.Scopes, &scopes)
	}

	return &entity.APIKey{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		SecretHash: data.SecretHash,
		Scopes:     scopes,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
	}
}
