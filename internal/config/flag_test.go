package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-l", "debug", "-f", "json", "-b", "zap", "-s", "-i", "10.0.0.7",
				"-u", "qa-terminal", "-n=false", "-r", "10", "-e", "/var/docflow"},
			expected: &Config{
				LogLevel:       "debug",
				LogFormat:      "json",
				LogBackend:     "zap",
				StrictApproval: true,
				ClientIP:       "10.0.0.7",
				UserAgent:      "qa-terminal",
				SeedDemoData:   false,
				RecentActivity: 10,
				ExportDir:      "/var/docflow",
			},
		},
		{
			name: "unknown flags and config path are ignored",
			args: []string{"-c", "conf.json", "-x", "1", "-l", "warn"},
			expected: func() *Config {
				c := &Config{}
				c.LoadDefaults()
				c.LogLevel = "warn"
				return c
			}(),
		},
		{
			name:        "bad integer panics",
			args:        []string{"-r", "many"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			config.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
