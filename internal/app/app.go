// Package app wires configuration, logging, engine, and server into the
// whisperd daemon entrypoint.
package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/rbright/whisperd/internal/config"
	"github.com/rbright/whisperd/internal/dispatch"
	"github.com/rbright/whisperd/internal/engine"
	"github.com/rbright/whisperd/internal/logging"
	"github.com/rbright/whisperd/internal/server"
	"github.com/rbright/whisperd/internal/version"
)

// DefaultConfigPath is where the daemon looks for its configuration when no
// -config flag is given.
const DefaultConfigPath = "/etc/whisperd/config.yaml"

// Runner carries the daemon's injectable collaborators. The zero value plus
// Stdout/Stderr is the production wiring.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer

	// NewEngine overrides the whisper.cpp engine constructor in tests. The
	// returned closer releases model state and may be nil.
	NewEngine func(cfg config.Config, logger *slog.Logger) (engine.Engine, func() error, error)
}

// Execute runs the daemon until ctx is cancelled and returns its exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("whisperd", flag.ContinueOnError)
	fs.SetOutput(r.Stderr)
	configPath := fs.String("config", DefaultConfigPath, "path to configuration file")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	// Config resolution logs through a bootstrap logger at info level; the
	// configured level only applies once the config is known.
	bootstrap, _ := logging.New(r.Stderr, "info")

	cfg, err := config.Load(*configPath, bootstrap)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	logger, err := logging.New(r.Stderr, cfg.Service.LogLevel)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	eng, closeEngine, err := r.newEngine(cfg, logger)
	if err != nil {
		logger.Error("engine initialization failed", slog.String("error", err.Error()))
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	if closeEngine != nil {
		defer func() { _ = closeEngine() }()
	}

	logger.Info("starting", slog.String("version", version.String()))

	srv := server.New(cfg, dispatch.New(cfg, eng, logger), logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	logger.Info("stopped")
	return 0
}

func (r Runner) newEngine(cfg config.Config, logger *slog.Logger) (engine.Engine, func() error, error) {
	if r.NewEngine != nil {
		return r.NewEngine(cfg, logger)
	}
	w, err := engine.NewWhisper(cfg.Model.DownloadDir, cfg.Model.Size, logger)
	if err != nil {
		return nil, nil, err
	}
	return w, w.Close, nil
}
