package config

import (
	"flag"

	"github.com/dmitrijs2005/docflow/internal/flagx"
)

var (
	valueFlags = []string{"-l", "-f", "-b", "-i", "-u", "-r", "-e"}
	boolFlags  = []string{"-s", "-n"}
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json)
//	-b string   log backend (slog, zap)
//	-s          strict approval mode
//	-i string   client IP recorded on audit entries
//	-u string   user agent recorded on audit entries
//	-n          seed demo data (use -n=false for an empty store)
//	-r int      dashboard recent activity size
//	-e string   audit export directory
//
// Unknown flags are filtered out first so -c/-config and friends pass through.
func parseFlags(config *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")
	fs.StringVar(&config.LogBackend, "b", config.LogBackend, "log backend")
	fs.BoolVar(&config.StrictApproval, "s", config.StrictApproval, "strict approval mode")
	fs.StringVar(&config.ClientIP, "i", config.ClientIP, "client IP address for audit entries")
	fs.StringVar(&config.UserAgent, "u", config.UserAgent, "user agent for audit entries")
	fs.BoolVar(&config.SeedDemoData, "n", config.SeedDemoData, "seed demo data")
	fs.IntVar(&config.RecentActivity, "r", config.RecentActivity, "recent activity size")
	fs.StringVar(&config.ExportDir, "e", config.ExportDir, "audit export directory")

	if err := fs.Parse(flagx.Filter(args, valueFlags, boolFlags)); err != nil {
		panic(err)
	}
}
