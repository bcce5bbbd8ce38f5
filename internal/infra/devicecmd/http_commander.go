// Package devicecmd implements the outbound transport used to trigger
// commands on RFID scale devices.
package devicecmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Fire-Devils/filaman-system/config"
	"github.com/Fire-Devils/filaman-system/internal/domain/service"

	"github.com/pkg/errors"
)

const writeCommandPath = "/api/v1/rfid/write"

// httpCommander implements DeviceCommander by posting JSON commands to the
// device's HTTP endpoint on the local network.
type httpCommander struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// NewHTTPCommander is the constructor for httpCommander.
func NewHTTPCommander(cfg *config.Config, logger *slog.Logger) service.DeviceCommander {
	timeout := cfg.Device.CommandTimeout

	return &httpCommander{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
		logger:  logger,
	}
}

// SendWriteCommand posts the command to the device. The timeout only bounds
// the trigger round-trip; the device reports the write outcome later via its
// result callback, so callers treat transport failures as non-fatal.
func (c *httpCommander) SendWriteCommand(ctx context.Context, ipAddress string, cmd *service.WriteCommand) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return errors.WithStack(err)
	}

	url := "http://" + ipAddress + writeCommandPath

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "FilaMan-Backend/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "device unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("device returned non-success status: %d", resp.StatusCode)
	}

	return nil
}
