package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "github.com/Fire-Devils/filaman-system/internal/delivery/context"
	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
	domainerrors "github.com/Fire-Devils/filaman-system/internal/domain/errors"
	"github.com/Fire-Devils/filaman-system/internal/domain/repository"
	"github.com/Fire-Devils/filaman-system/internal/domain/service"
	"github.com/Fire-Devils/filaman-system/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceActiveWindow is how recently a device must have sent a heartbeat to
// count as active.
const deviceActiveWindow = 3 * time.Minute

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	commander    service.DeviceCommander
	logger       *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Commander    service.DeviceCommander
	Logger       *slog.Logger
}

// NewDeviceService is the constructor for deviceService. It receives all dependencies as interfaces.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		commander:    params.Commander,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice exchanges a one-time registration code for a device token.
func (srv *deviceService) RegisterDevice(ctx context.Context, code string) (*usecase.RegisterDeviceOutput, error) {
	secret, err := srv.tokenService.GenerateSecret()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate device secret")
	}

	tokenHash, err := srv.hasher.Hash(secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash device secret")
	}

	var device *entity.Device
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.DeviceRepo().FindDeviceByCode(ctx, code)
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("invalid device code")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find device by code")
		}

		// Re-registration with a still-valid code rotates the token.
		if err := repoFactory.DeviceRepo().UpdateRegistration(ctx, found.ID, tokenHash); err != nil {
			return errors.Wrap(err, "failed to store device registration")
		}

		device = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Device registered", slog.Int64("deviceID", device.ID))

	return &usecase.RegisterDeviceOutput{
		Token:  srv.tokenService.Encode(service.SchemeDevice, device.ID, secret),
		Device: device,
	}, nil
}

// Heartbeat records the device's reported address and liveness.
func (srv *deviceService) Heartbeat(ctx context.Context, deviceID int64, ipAddress string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		now := time.Now().UTC()

		if err := repoFactory.DeviceRepo().UpdateHeartbeat(ctx, deviceID, ipAddress, now); err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("device not found")
			}

			return errors.Wrap(err, "failed to update heartbeat")
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// ListActiveDevices returns devices seen within the liveness window.
func (srv *deviceService) ListActiveDevices(ctx context.Context) ([]*entity.Device, error) {
	var devices []*entity.Device
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		threshold := time.Now().UTC().Add(-deviceActiveWindow)

		found, err := repoFactory.DeviceRepo().FindDevicesSeenSince(ctx, threshold)
		if err != nil {
			return errors.Wrap(err, "failed to list active devices")
		}

		devices = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return devices, nil
}

// TriggerTagWrite records a pending outcome and dispatches the write command.
// The pending outcome is committed before dispatch so a client polling right
// after triggering never observes stale state. Transport failure is logged
// and swallowed: the device may still process the command.
func (srv *deviceService) TriggerTagWrite(ctx context.Context, deviceID int64, input *usecase.TriggerWriteInput) error {
	if (input.SpoolID == nil) == (input.LocationID == nil) {
		return domainerrors.ErrWriteTargetRequired
	}

	var device *entity.Device
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.DeviceRepo().FindDeviceByID(ctx, deviceID)
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("device not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find device")
		}

		if !found.Reachable() {
			return domainerrors.ErrNotFound.WrapMessage("device not found, inactive or has no address")
		}

		pending := &entity.WriteResult{
			Status:    entity.WriteStatusPending,
			Timestamp: time.Now().UTC(),
		}
		if err := repoFactory.DeviceRepo().SaveWriteResult(ctx, found.ID, pending); err != nil {
			return errors.Wrap(err, "failed to record pending write")
		}

		device = found

		return nil
	})
	if err != nil {
		return err
	}

	cmd := &service.WriteCommand{
		SpoolID:    input.SpoolID,
		LocationID: input.LocationID,
	}
	if err := srv.commander.SendWriteCommand(ctx, device.IPAddress, cmd); err != nil {
		srv.log(ctx).Warn("Could not reach device for trigger",
			slog.Int64("deviceID", device.ID),
			slog.String("ipAddress", device.IPAddress),
			slog.Any("error", err))
	}

	return nil
}

// RecordTagWriteResult reconciles a device's asynchronous write result.
// Every branch yields a persisted outcome; target-resolution failures are
// recorded in the outcome rather than returned to the device, which cannot
// act on a structured error anyway.
func (srv *deviceService) RecordTagWriteResult(ctx context.Context, deviceID int64, input *usecase.WriteCallbackInput) (*entity.WriteResult, error) {
	result := &entity.WriteResult{
		Status:    entity.WriteStatusSuccess,
		TagID:     input.TagID,
		Timestamp: time.Now().UTC(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if !input.Success {
			result.Status = entity.WriteStatusError
			result.ErrorMessage = input.ErrorMessage
			srv.log(ctx).Warn("RFID write failed on device",
				slog.Int64("deviceID", deviceID),
				slog.String("error", input.ErrorMessage))

			return srv.saveResult(ctx, repoFactory, deviceID, result)
		}

		if input.TagID == "" {
			result.Status = entity.WriteStatusError
			result.ErrorMessage = "no tag id provided"

			return srv.saveResult(ctx, repoFactory, deviceID, result)
		}

		resolvedSpool, err := srv.reconcileTag(ctx, repoFactory, input, result)
		if err != nil {
			return err
		}

		if input.MeasuredWeight != nil {
			if err := srv.applyMeasuredWeight(ctx, repoFactory, input, resolvedSpool); err != nil {
				return err
			}
		}

		return srv.saveResult(ctx, repoFactory, deviceID, result)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// reconcileTag runs the deduplication pass and the target assignment, filling
// in the outcome's removed-from note and error state as it goes. It returns
// the spool the tag ended up on, if any.
func (srv *deviceService) reconcileTag(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	input *usecase.WriteCallbackInput,
	result *entity.WriteResult,
) (*entity.Spool, error) {
	spoolRepo := repoFactory.SpoolRepo()
	locationRepo := repoFactory.LocationRepo()

	// Resolve the implicit target before deduplication so a scan-discovered
	// spool is excluded from the cleanup rather than stripped of its tag.
	var resolvedSpool *entity.Spool
	excludeSpoolID := input.SpoolID
	if excludeSpoolID == nil {
		found, err := spoolRepo.FindActiveSpoolByTag(ctx, input.TagID)
		if err != nil && !errors.Is(err, repository.ErrSpoolNotFound) {
			return nil, errors.Wrap(err, "failed to find spool by tag")
		}
		if found != nil {
			resolvedSpool = found
			excludeSpoolID = &found.ID
		}
	}

	// Deduplication pass: the tag may be attached to at most one active
	// spool and one location, so clear it from everything else first.
	var removed []string

	otherSpools, err := spoolRepo.FindOtherActiveSpoolsByTag(ctx, input.TagID, excludeSpoolID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find duplicate spools")
	}
	for _, other := range otherSpools {
		if err := spoolRepo.AssignTag(ctx, other.ID, nil); err != nil {
			return nil, errors.Wrap(err, "failed to clear duplicate spool tag")
		}
		removed = append(removed, fmt.Sprintf("spool #%d", other.ID))
	}

	otherLocations, err := locationRepo.FindOtherLocationsByIdentifier(ctx, input.TagID, input.LocationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find duplicate locations")
	}
	for _, other := range otherLocations {
		if err := locationRepo.AssignIdentifier(ctx, other.ID, nil); err != nil {
			return nil, errors.Wrap(err, "failed to clear duplicate location identifier")
		}
		removed = append(removed, fmt.Sprintf("location %q", other.Name))
	}

	result.RemovedFrom = strings.Join(removed, ", ")

	// Target assignment. A missing target is an error outcome, but spool
	// and location handling proceed independently of each other.
	tag := input.TagID

	if input.SpoolID != nil {
		found, err := spoolRepo.FindSpoolByID(ctx, *input.SpoolID)
		if errors.Is(err, repository.ErrSpoolNotFound) {
			result.Status = entity.WriteStatusError
			result.ErrorMessage = "target spool not found"
		} else if err != nil {
			return nil, errors.Wrap(err, "failed to find target spool")
		} else {
			resolvedSpool = found
		}
	}

	if resolvedSpool != nil {
		if err := spoolRepo.AssignTag(ctx, resolvedSpool.ID, &tag); err != nil {
			return nil, errors.Wrap(err, "failed to assign spool tag")
		}
	}

	if input.LocationID != nil {
		_, err := locationRepo.FindLocationByID(ctx, *input.LocationID)
		if errors.Is(err, repository.ErrLocationNotFound) {
			result.Status = entity.WriteStatusError
			result.ErrorMessage = "target location not found"
		} else if err != nil {
			return nil, errors.Wrap(err, "failed to find target location")
		} else if err := locationRepo.AssignIdentifier(ctx, *input.LocationID, &tag); err != nil {
			return nil, errors.Wrap(err, "failed to assign location identifier")
		}
	}

	return resolvedSpool, nil
}

// applyMeasuredWeight records the measured weight against whichever spool the
// callback resolves to, so a single callback can both tag a fresh spool and
// report its initial weight.
func (srv *deviceService) applyMeasuredWeight(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	input *usecase.WriteCallbackInput,
	resolvedSpool *entity.Spool,
) error {
	spoolRepo := repoFactory.SpoolRepo()

	target := resolvedSpool
	if target == nil && input.TagID != "" {
		found, err := spoolRepo.FindActiveSpoolByTag(ctx, input.TagID)
		if err != nil && !errors.Is(err, repository.ErrSpoolNotFound) {
			return errors.Wrap(err, "failed to find spool by tag for weight update")
		}
		target = found
	}
	if target == nil && input.SpoolID != nil {
		found, err := spoolRepo.FindSpoolByID(ctx, *input.SpoolID)
		if err != nil && !errors.Is(err, repository.ErrSpoolNotFound) {
			return errors.Wrap(err, "failed to find spool by id for weight update")
		}
		target = found
	}

	if target == nil {
		srv.log(ctx).Warn("Could not find spool to update weight",
			slog.String("tagID", input.TagID))

		return nil
	}

	if err := spoolRepo.UpdateRemainingWeight(ctx, target.ID, *input.MeasuredWeight); err != nil {
		return errors.Wrap(err, "failed to update spool weight")
	}

	return nil
}

// saveResult replaces the device's last write outcome as a whole.
func (srv *deviceService) saveResult(ctx context.Context, repoFactory repository.RepositoryFactory, deviceID int64, result *entity.WriteResult) error {
	if err := repoFactory.DeviceRepo().SaveWriteResult(ctx, deviceID, result); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("device not found")
		}

		return errors.Wrap(err, "failed to save write result")
	}

	return nil
}

// GetWriteStatus returns the device's last recorded write outcome, or a
// "none" outcome when no command has ever been issued.
func (srv *deviceService) GetWriteStatus(ctx context.Context, deviceID int64) (*entity.WriteResult, error) {
	var result *entity.WriteResult
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		device, err := repoFactory.DeviceRepo().FindDeviceByID(ctx, deviceID)
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("device not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find device")
		}

		result = device.LastWriteResult

		return nil
	})
	if err != nil {
		return nil, err
	}

	if result == nil {
		return &entity.WriteResult{Status: entity.WriteStatusNone}, nil
	}

	return result, nil
}

// WeighSpool records a standalone scale measurement. The spool is located by
// tag first, falling back to the numeric id.
func (srv *deviceService) WeighSpool(ctx context.Context, input *usecase.WeighInput) (*usecase.WeighOutput, error) {
	var spool *entity.Spool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		spoolRepo := repoFactory.SpoolRepo()

		if input.TagID != "" {
			tag := strings.ToLower(input.TagID)
			found, err := spoolRepo.FindActiveSpoolByTag(ctx, tag)
			if err != nil && !errors.Is(err, repository.ErrSpoolNotFound) {
				return errors.Wrap(err, "failed to find spool by tag")
			}
			spool = found
		}

		if spool == nil && input.SpoolID != nil {
			found, err := spoolRepo.FindSpoolByID(ctx, *input.SpoolID)
			if err != nil && !errors.Is(err, repository.ErrSpoolNotFound) {
				return errors.Wrap(err, "failed to find spool by id")
			}
			spool = found
		}

		if spool == nil {
			return domainerrors.ErrNotFound.WrapMessage("spool not found")
		}

		if err := spoolRepo.UpdateRemainingWeight(ctx, spool.ID, input.MeasuredWeightGrams); err != nil {
			return errors.Wrap(err, "failed to update spool weight")
		}

		grams := input.MeasuredWeightGrams
		spool.RemainingWeightGrams = &grams

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.WeighOutput{Spool: spool}, nil
}
