// Package config handles docflow runtime settings: defaults, an optional JSON
// overlay and command-line flags, applied in that order.
package config

import (
	"os"

	"github.com/dmitrijs2005/docflow/internal/common"
	"github.com/dmitrijs2005/docflow/internal/logging"
)

// Config holds runtime settings for a docflow session.
//
// Fields:
//   - LogLevel / LogFormat / LogBackend: logger selection (see logging.Options).
//   - StrictApproval: enforce role, current-step and template applicability
//     checks inside the workflow engine instead of leaving them to the UI.
//   - ClientIP / UserAgent: network metadata stamped on every audit entry.
//     Both are client-supplied and never verified.
//   - SeedDemoData: load the demo catalog, users, templates and documents.
//   - RecentActivity: number of audit entries shown on the dashboard.
//   - ExportDir: directory that receives audit trail exports.
type Config struct {
	LogLevel       string
	LogFormat      string
	LogBackend     string
	StrictApproval bool
	ClientIP       string
	UserAgent      string
	SeedDemoData   bool
	RecentActivity int
	ExportDir      string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
	c.LogBackend = logging.BackendSlog
	c.StrictApproval = false
	c.ClientIP = "192.168.1.1"
	c.UserAgent = "docflow-cli"
	c.SeedDemoData = true
	c.RecentActivity = common.DefaultRecentActivity
	c.ExportDir = common.DefaultExportDir
}

// LoggingOptions maps the logging fields onto logging.Options.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Backend: c.LogBackend, Level: c.LogLevel, Format: c.LogFormat}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	return loadFrom(os.Args[1:])
}

func loadFrom(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
