package postgres

import (
	"context"

	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
	"github.com/Fire-Devils/filaman-system/internal/domain/repository"
	"github.com/Fire-Devils/filaman-system/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id int64) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindOtherLocationsByIdentifier retrieves every location holding the
// identifier, excluding the given location ID when non-nil.
func (repo *locationRepository) FindOtherLocationsByIdentifier(ctx context.Context, identifier string, excludeID *int64) ([]*entity.Location, error) {
	query := repo.db.WithContext(ctx).Where("identifier = ?", identifier)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var locationModels []*model.LocationModel
	if err := query.Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by identifier")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// AssignIdentifier sets or clears (nil) the location's RFID identifier.
func (repo *locationRepository) AssignIdentifier(ctx context.Context, locationID int64, identifier *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", locationID).
		Update("identifier", identifier)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to assign location identifier")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:         data.ID,
		Name:       data.Name,
		Identifier: data.Identifier,
		CreatedAt:  data.CreatedAt,
	}
}
