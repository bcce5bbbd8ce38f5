package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
	"github.com/Fire-Devils/filaman-system/internal/domain/repository"
	"github.com/Fire-Devils/filaman-system/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindDeviceByID retrieves a device by its unique ID, including soft-deleted
// rows so the resolver can apply its own rejection rules.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id int64) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).Unscoped().
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDeviceByCode retrieves a device by its one-time registration code.
func (repo *deviceRepository) FindDeviceByCode(ctx context.Context, code string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_code = ?", code).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by code")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesSeenSince retrieves active devices whose last heartbeat is at
// or after the given threshold.
func (repo *deviceRepository) FindDevicesSeenSince(ctx context.Context, since time.Time) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("last_seen_at >= ? AND is_active = ?", since, true).
		Order("last_seen_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices seen since")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// TouchDevice updates the last-used timestamp.
func (repo *deviceRepository) TouchDevice(ctx context.Context, id int64, lastUsedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Update("last_used_at", lastUsedAt)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// UpdateHeartbeat records the device's reported address and last-seen time.
func (repo *deviceRepository) UpdateHeartbeat(ctx context.Context, id int64, ipAddress string, seenAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"ip_address":   ipAddress,
			"last_seen_at": seenAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device heartbeat")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// UpdateRegistration stores a freshly issued token hash, invalidates the
// one-time code and activates the device.
func (repo *deviceRepository) UpdateRegistration(ctx context.Context, id int64, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"token_hash":  tokenHash,
			"device_code": nil,
			"is_active":   true,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// SaveWriteResult replaces the device's last write result as a whole.
func (repo *deviceRepository) SaveWriteResult(ctx context.Context, id int64, writeResult *entity.WriteResult) error {
	blob, err := json.Marshal(writeResult)
	if err != nil {
		return errors.Wrap(err, "failed to encode write result")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Update("last_write_result", datatypes.JSON(blob))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save write result")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	var deletedAt *time.Time
	if data.DeletedAt.Valid {
		t := data.DeletedAt.Time
		deletedAt = &t
	}

	var scopes []string
	if len(data.Scopes) > 0 {
		_ = json.Unmarshal(data.Scopes, &scopes)
	}

	var writeResult *entity.WriteResult
	if len(data.LastWriteResult) > 0 {
		var decoded entity.WriteResult
		if err := json.Unmarshal(data.LastWriteResult, &decoded); err == nil {
			writeResult = &decoded
		}
	}

	return &entity.Device{
		ID:              data.ID,
		Name:            data.Name,
		TokenHash:       data.TokenHash,
		DeviceCode:      data.DeviceCode,
		IsActive:        data.IsActive,
		Scopes:          scopes,
		IPAddress:       data.IPAddress,
		LastUsedAt:      data.LastUsedAt,
		LastSeenAt:      data.LastSeenAt,
		LastWriteResult: writeResult,
		CreatedAt:       data.CreatedAt,
		DeletedAt:       deletedAt,
	}
}
