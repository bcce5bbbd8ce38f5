package usecase

import (
	"context"

	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
)

// --- Input DTOs ---

// TriggerWriteInput defines the target of a tag-write command.
// Exactly one of SpoolID or LocationID must be set.
type TriggerWriteInput struct {
	SpoolID    *int64
	LocationID *int64
}

// WriteCallbackInput is the result payload a device posts after finishing
// an RFID write attempt. All fields except Success are optional.
type WriteCallbackInput struct {
	Success        bool
	TagID          string
	ErrorMessage   string
	SpoolID        *int64
	LocationID     *int64
	MeasuredWeight *float64
}

// WeighInput defines a standalone weight measurement reported by a scale.
// The spool is located by tag first, falling back to the numeric id.
type WeighInput struct {
	TagID               string
	SpoolID             *int64
	MeasuredWeightGrams float64
}

// --- Output DTOs ---

// RegisterDeviceOutput returns the freshly issued device token. The secret
// inside the token is shown exactly once; only its hash is stored.
type RegisterDeviceOutput struct {
	Token  string
	Device *entity.Device
}

// WeighOutput returns the spool a measurement was recorded against.
type WeighOutput struct {
	Spool *entity.Spool
}

// DeviceUsecase defines the interface for the device command protocol:
// registration, liveness, the asynchronous tag-write exchange, and scale
// measurements.
type DeviceUsecase interface {
	// RegisterDevice exchanges a one-time registration code for a device
	// token. The code is invalidated, the token hash rotated, and the
	// device activated. Calling again with a valid code rotates the token.
	RegisterDevice(ctx context.Context, code string) (*RegisterDeviceOutput, error)

	// Heartbeat records the device's reported address and liveness.
	Heartbeat(ctx context.Context, deviceID int64, ipAddress string) error

	// ListActiveDevices returns devices seen within the liveness window.
	ListActiveDevices(ctx context.Context) ([]*entity.Device, error)

	// TriggerTagWrite records a pending outcome on the device and then
	// dispatches the write command to it. Transport failure is swallowed:
	// the device may still process the command, and reports the real
	// outcome later through RecordTagWriteResult.
	TriggerTagWrite(ctx context.Context, deviceID int64, input *TriggerWriteInput) error

	// RecordTagWriteResult reconciles a device's asynchronous write result:
	// it clears the tag from every other record holding it, assigns it to
	// the resolved targets, optionally records a measured weight, and
	// persists the final outcome on the device. Target-resolution failures
	// are recorded in the outcome rather than returned.
	RecordTagWriteResult(ctx context.Context, deviceID int64, input *WriteCallbackInput) (*entity.WriteResult, error)

	// GetWriteStatus returns the device's last recorded write outcome, or a
	// "none" outcome when no command has ever been issued.
	GetWriteStatus(ctx context.Context, deviceID int64) (*entity.WriteResult, error)

	// WeighSpool records a fresh remaining-weight measurement for a spool.
	WeighSpool(ctx context.Context, input *WeighInput) (*WeighOutput, error)
}
