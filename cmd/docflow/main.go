package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/docflow/internal/buildinfo"
	"github.com/dmitrijs2005/docflow/internal/cli"
	"github.com/dmitrijs2005/docflow/internal/config"
	"github.com/dmitrijs2005/docflow/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LoggingOptions())

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

	// stderr may not support fsync
	_ = logging.Sync(logger)
}
