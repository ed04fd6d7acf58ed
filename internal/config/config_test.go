package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/docflow/internal/logging"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, "slog", c.LogBackend)
	assert.False(t, c.StrictApproval)
	assert.Equal(t, "192.168.1.1", c.ClientIP)
	assert.Equal(t, "docflow-cli", c.UserAgent)
	assert.True(t, c.SeedDemoData)
	assert.Equal(t, 5, c.RecentActivity)
	assert.Equal(t, "exports", c.ExportDir)
}

func TestLoadFrom_NoArgsKeepsDefaults(t *testing.T) {
	c := loadFrom(nil)
	require.NotNil(t, c)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestLoggingOptions(t *testing.T) {
	c := &Config{LogBackend: "zap", LogLevel: "debug", LogFormat: "json"}
	assert.Equal(t, logging.Options{Backend: "zap", Level: "debug", Format: "json"}, c.LoggingOptions())
}
