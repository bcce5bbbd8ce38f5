package service

import "context"

// WriteCommand is the payload sent to a device to start an RFID tag write.
// Exactly one of SpoolID or LocationID is set.
type WriteCommand struct {
	SpoolID    *int64 `json:"spool_id,omitempty"`
	LocationID *int64 `json:"location_id,omitempty"`
}

// DeviceCommander sends fire-and-forget commands to a device on the local
// network. The call only acknowledges transport-level receipt; the write
// outcome arrives later through the device's own result callback. No retries
// are performed and the response body is not trusted.
type DeviceCommander interface {
	// SendWriteCommand posts the command to the device address. The context
	// carries the short command timeout.
	SendWriteCommand(ctx context.Context, ipAddress string, cmd *WriteCommand) error
}
