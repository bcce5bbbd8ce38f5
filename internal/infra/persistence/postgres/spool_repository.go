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

// spoolRepository implements the repository.SpoolRepository interface.
type spoolRepository struct {
	db *gorm.DB
}

// NewSpoolRepository is the constructor for spoolRepository.
func NewSpoolRepository(db *gorm.DB) repository.SpoolRepository {
	return &spoolRepository{
		db: db,
	}
}

// FindSpoolByID retrieves a spool by its unique ID.
func (repo *spoolRepository) FindSpoolByID(ctx context.Context, id int64) (*entity.Spool, error) {
	var spoolM model.SpoolModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&spoolM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpoolNotFound
		}

		return nil, errors.Wrap(err, "failed to find spool by ID")
	}

	return toSpoolDomain(&spoolM), nil
}

// FindActiveSpoolByTag retrieves the active spool currently holding the
// given RFID tag. GORM's default scope already excludes soft-deleted rows.
func (repo *spoolRepository) FindActiveSpoolByTag(ctx context.Context, tagID string) (*entity.Spool, error) {
	var spoolM model.SpoolModel

	if err := repo.db.WithContext(ctx).
		Where("tag_id = ?", tagID).
		First(&spoolM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpoolNotFound
		}

		return nil, errors.Wrap(err, "failed to find spool by tag")
	}

	return toSpoolDomain(&spoolM), nil
}

// FindOtherActiveSpoolsByTag retrieves every active spool holding the tag,
// excluding the given spool ID when non-nil.
func (repo *spoolRepository) FindOtherActiveSpoolsByTag(ctx context.Context, tagID string, excludeID *int64) ([]*entity.Spool, error) {
	query := repo.db.WithContext(ctx).Where("tag_id = ?", tagID)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var spoolModels []*model.SpoolModel
	if err := query.Find(&spoolModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find spools by tag")
	}

	spools := make([]*entity.Spool, 0, len(spoolModels))
	for _, spoolM := range spoolModels {
		spools = append(spools, toSpoolDomain(spoolM))
	}

	return spools, nil
}

// AssignTag sets or clears (nil) the spool's RFID tag.
func (repo *spoolRepository) AssignTag(ctx context.Context, spoolID int64, tagID *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SpoolModel{}).
		Where("id = ?", spoolID).
		Update("tag_id", tagID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to assign spool tag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSpoolNotFound
	}

	return nil
}

// UpdateRemainingWeight records a fresh weight measurement for the spool.
func (repo *spoolRepository) UpdateRemainingWeight(ctx context.Context, spoolID int64, grams float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SpoolModel{}).
		Where("id = ?", spoolID).
		Update("remaining_weight_grams", grams)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update spool weight")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSpoolNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSpoolDomain converts a GORM SpoolModel to a domain Spool entity.
func toSpoolDomain(data *model.SpoolModel) *entity.Spool {
	if data == nil {
		return nil
	}

	var deletedAt *time.Time
	if data.DeletedAt.Valid {
		t := data.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Spool{
		ID:                   data.ID,
		FilamentName:         data.FilamentName,
		TagID:                data.TagID,
		RemainingWeightGrams: data.RemainingWeightGrams,
		CreatedAt:            data.CreatedAt,
		DeletedAt:            deletedAt,
	}
}
