package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/wastetrack/internal/client/cli"
	"github.com/dmitrijs2005/wastetrack/internal/client/config"
	"github.com/dmitrijs2005/wastetrack/internal/logging"
)

// Set with -ldflags "-X main.buildVersion=..." at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func printBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\nBuild date: %s\n", buildVersion, buildDate)
}

func main() {
	printBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error(ctx, "close database", "error", err)
		}
	}()

	app.Run(ctx)
}
