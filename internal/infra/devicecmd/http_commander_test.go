package devicecmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Fire-Devils/filaman-system/config"
	"github.com/Fire-Devils/filaman-system/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommander(t *testing.T) service.DeviceCommander {
	t.Helper()

	cfg := &config.Config{Device: &config.DeviceConfig{CommandTimeout: 2 * time.Second}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewHTTPCommander(cfg, logger)
}

func TestHTTPCommander_SendWriteCommand(t *testing.T) {
	var (
		gotPath   string
		gotMethod string
		gotBody   map[string]any
		gotAgent  string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotAgent = r.Header.Get("User-Agent")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	commander := newTestCommander(t)
	spoolID := int64(2)
	address := strings.TrimPrefix(server.URL, "http://")

	err := commander.SendWriteCommand(context.Background(), address, &service.WriteCommand{SpoolID: &spoolID})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v1/rfid/write", gotPath)
	assert.Equal(t, "FilaMan-Backend/1.0", gotAgent)
	assert.Equal(t, float64(2), gotBody["spool_id"])
	assert.NotContains(t, gotBody, "location_id")
}

func TestHTTPCommander_SendWriteCommand_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	commander := newTestCommander(t)
	locationID := int64(4)
	address := strings.TrimPrefix(server.URL, "http://")

	err := commander.SendWriteCommand(context.Background(), address, &service.WriteCommand{LocationID: &locationID})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}

func TestHTTPCommander_SendWriteCommand_Unreachable(t *testing.T) {
	// A closed server behaves like a powered-off device.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	address := strings.TrimPrefix(server.URL, "http://")
	server.Close()

	commander := newTestCommander(t)
	spoolID := int64(2)

	err := commander.SendWriteCommand(context.Background(), address, &service.WriteCommand{SpoolID: &spoolID})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "device unreachable")
}
