package repository

import (
	"context"
	"time"

	"github.com/Fire-Devils/filaman-system/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// FindDeviceByID retrieves a device by its unique ID, including soft-deleted rows
	// so callers can apply their own validity rules.
	FindDeviceByID(ctx context.Context, id int64) (*entity.Device, error)

	// FindDeviceByCode retrieves a device by its one-time registration code.
	FindDeviceByCode(ctx context.Context, code string) (*entity.Device, error)

	// FindDevicesSeenSince retrieves active devices whose last heartbeat is
	// at or after the given threshold.
	FindDevicesSeenSince(ctx context.Context, since time.Time) ([]*entity.Device, error)

	// TouchDevice updates the last-used timestamp.
	TouchDevice(ctx context.Context, id int64, lastUsedAt time.Time) error

	// UpdateHeartbeat records the device's reported address and last-seen time.
	UpdateHeartbeat(ctx context.Context, id int64, ipAddress string, seenAt time.Time) error

	// UpdateRegistration stores a freshly issued token hash, invalidates the
	// one-time code and activates the device.
	UpdateRegistration(ctx context.Context, id int64, tokenHash string) error

	// SaveWriteResult replaces the device's last write result as a whole.
	SaveWriteResult(ctx context.Context, id int64, result *entity.WriteResult) error
}
