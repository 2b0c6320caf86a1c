package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		expectErr bool
	}{
		{name: "debug level", level: "debug"},
		{name: "info level", level: "info"},
		{name: "warn level", level: "warn"},
		{name: "warning alias", level: "warning"},
		{name: "error level", level: "error"},
		{name: "mixed case", level: "INFO"},
		{name: "unknown level", level: "verbose", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	assert.NoError(t, err)

	logger.Info("webhook processed", "event_type", "user.created")

	var record map[string]interface{}
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "webhook processed", record["msg"])
	assert.Equal(t, "user.created", record["event_type"])
	assert.Equal(t, "growhub", record["service"])
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("error", &buf)
	assert.NoError(t, err)

	logger.Info("should be filtered")
	assert.Zero(t, buf.Len())

	logger.Error("should appear")
	assert.NotZero(t, buf.Len())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	assert.NoError(t, err)

	WithComponent(logger, "identity_sync").Info("linked user")

	var record map[string]interface{}
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "identity_sync", record["component"])
}
