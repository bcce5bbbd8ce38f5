package handler

import (
	"net/http"
	"strconv"

	deliverycontext "github.com/Fire-Devils/filaman-system/internal/delivery/context"
	"github.com/Fire-Devils/filaman-system/internal/delivery/http/response"
	domainerrors "github.com/Fire-Devils/filaman-system/internal/domain/errors"
	"github.com/Fire-Devils/filaman-system/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceCodeHeader carries the one-time registration code.
const DeviceCodeHeader = "X-Device-Code"

// heartbeatRequest is the device liveness report body.
type heartbeatRequest struct {
	IPAddress string `json:"ip_address" validate:"required"`
}

// writeTagRequest selects the target of a tag-write command.
type writeTagRequest struct {
	SpoolID    *int64 `json:"spool_id"`
	LocationID *int64 `json:"location_id"`
}

// rfidResultRequest is the asynchronous write outcome a device reports back.
type rfidResultRequest struct {
	Success          bool     `json:"success"`
	TagID            string   `json:"tag_id"`
	ErrorMessage     string   `json:"error_message"`
	SpoolID          *int64   `json:"spool_id"`
	LocationID       *int64   `json:"location_id"`
	RemainingWeightG *float64 `json:"remaining_weight_g"`
}

// weighRequest is a standalone scale measurement.
type weighRequest struct {
	TagID           string  `json:"tag_id"`
	SpoolID         *int64  `json:"spool_id"`
	MeasuredWeightG float64 `json:"measured_weight_g" validate:"gte=0"`
}

// activeDeviceResponse is the trimmed listing entry for active devices.
type activeDeviceResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IPAddress string `json:"ip_address"`
}

// DeviceHandler holds dependencies for device-related handlers.
type DeviceHandler struct {
	uc usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{
		uc: uc,
	}
}

// Register exchanges a one-time device code for a device token.
func (h *DeviceHandler) Register(c echo.Context) error {
	code := c.Request().Header.Get(DeviceCodeHeader)
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing "+DeviceCodeHeader+" header")
	}

	output, err := h.uc.RegisterDevice(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": output.Token}, "Device registered")
}

// Heartbeat records the calling device's address and liveness.
func (h *DeviceHandler) Heartbeat(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrRejectedCredential
	}

	var input heartbeatRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid heartbeat input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Heartbeat(c.Request().Context(), principal.DeviceID, input.IPAddress); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// ListActive returns devices seen within the liveness window.
func (h *DeviceHandler) ListActive(c echo.Context) error {
	devices, err := h.uc.ListActiveDevices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	listing := make([]activeDeviceResponse, 0, len(devices))
	for _, device := range devices {
		listing = append(listing, activeDeviceResponse{
			ID:        device.ID,
			Name:      device.Name,
			IPAddress: device.IPAddress,
		})
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// WriteTag triggers an RFID write on a device. The response only confirms
// dispatch; the outcome arrives later via RfidResult.
func (h *DeviceHandler) WriteTag(c echo.Context) error {
	deviceID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var input writeTagRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid write-tag input")
	}

	if err := h.uc.TriggerTagWrite(c.Request().Context(), deviceID, &usecase.TriggerWriteInput{
		SpoolID:    input.SpoolID,
		LocationID: input.LocationID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Write started, hold the tag ready"}, "")
}

// WriteStatus returns the last recorded write outcome for a device.
func (h *DeviceHandler) WriteStatus(c echo.Context) error {
	deviceID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.uc.GetWriteStatus(c.Request().Context(), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// RfidResult receives the asynchronous write outcome from the calling device.
func (h *DeviceHandler) RfidResult(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrRejectedCredential
	}

	var input rfidResultRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid result input")
	}

	result, err := h.uc.RecordTagWriteResult(c.Request().Context(), principal.DeviceID, &usecase.WriteCallbackInput{
		Success:        input.Success,
		TagID:          input.TagID,
		ErrorMessage:   input.ErrorMessage,
		SpoolID:        input.SpoolID,
		LocationID:     input.LocationID,
		MeasuredWeight: input.RemainingWeightG,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Result processed")
}

// ScaleWeight records a standalone weight measurement from a scale.
func (h *DeviceHandler) ScaleWeight(c echo.Context) error {
	var input weighRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weigh input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.WeighSpool(c.Request().Context(), &usecase.WeighInput{
		TagID:               input.TagID,
		SpoolID:             input.SpoolID,
		MeasuredWeightGrams: input.MeasuredWeightG,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Spool, "Measurement recorded")
}

func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("invalid device id")
	}

	return id, nil
}
