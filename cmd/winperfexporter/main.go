// Command winperfexporter polls Windows performance counters and serves them
// as Prometheus metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zaphar/win-utils/internal/config"
	"github.com/zaphar/win-utils/internal/exporter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "winperfexporter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile = flag.String("config", "", "path to a YAML configuration file")
		listen     = flag.String("listen", "", "address:port to serve metrics on (overrides config)")
		interval   = flag.Duration("interval", 0, "delay between counter collections (overrides config)")
		machine    = flag.String("machine", "", "remote machine to read counters from (overrides config)")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	cfg := config.NewDefault()
	if *configFile != "" {
		if err := cfg.LoadFromFile(*configFile); err != nil {
			return err
		}
	}
	cfg.LoadFromEnv()
	if *listen != "" {
		cfg.ListenAddress = *listen
	}
	if *interval > 0 {
		cfg.PollInterval = *interval
	}
	if *machine != "" {
		cfg.Machine = *machine
	}
	if *debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// A misconfigured counter set fails here, before any collection runs.
	e, err := exporter.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := e.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.Stop(shutdownCtx)
}
