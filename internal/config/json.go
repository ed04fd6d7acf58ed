package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/docflow/internal/flagx"
	"gopkg.in/yaml.v3"
)

// JsonConfig is the on-disk shape of a config file. Pointer fields tell an
// absent key apart from an explicit zero value.
type JsonConfig struct {
	LogLevel       string `json:"log_level" yaml:"log_level"`
	LogFormat      string `json:"log_format" yaml:"log_format"`
	LogBackend     string `json:"log_backend" yaml:"log_backend"`
	StrictApproval *bool  `json:"strict_approval" yaml:"strict_approval"`
	ClientIP       string `json:"client_ip" yaml:"client_ip"`
	UserAgent      string `json:"user_agent" yaml:"user_agent"`
	SeedDemoData   *bool  `json:"seed" yaml:"seed"`
	RecentActivity *int   `json:"recent_activity" yaml:"recent_activity"`
	ExportDir      string `json:"export_dir" yaml:"export_dir"`
}

// parseJson overlays values from the file named by -c / -config onto config.
// Files ending in .yaml or .yml are read as YAML, anything else as JSON.
// Without the flag nothing is loaded. An unreadable or malformed file
// panics.
func parseJson(config *Config, args []string) {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(file, c)
	default:
		err = json.Unmarshal(file, c)
	}
	if err != nil {
		panic(err)
	}

	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.LogBackend, c.LogBackend)
	setString(&config.ClientIP, c.ClientIP)
	setString(&config.UserAgent, c.UserAgent)
	setString(&config.ExportDir, c.ExportDir)

	if c.StrictApproval != nil {
		config.StrictApproval = *c.StrictApproval
	}
	if c.SeedDemoData != nil {
		config.SeedDemoData = *c.SeedDemoData
	}
	if c.RecentActivity != nil {
		config.RecentActivity = *c.RecentActivity
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
