package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"jungle/internal/config"
	"jungle/internal/desktop"
)

func main() {
	configPath := flag.String("config", "", "path to the INI config (default $JUNGLE_CONFIG or jungle.ini)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "jungle",
		ReportTimestamp: true,
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.Level())
	if cfg.File != "" {
		logger.Debug("config loaded", "file", cfg.File)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := desktop.Run(ctx, cfg, logger); err != nil {
		logger.Error("game error", "err", err)
		stop()
		os.Exit(1)
	}
}
