package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rbright/whisperd/internal/hw"
)

// Hardware is the capability surface consulted while resolving "auto" fields.
// All queries are best-effort and never fail; see the hw package.
type Hardware interface {
	Architecture() string
	OperatingSystem() string
	AcceleratorAvailable() bool
	AcceleratorMemoryMB() (int, bool)
	PhysicalCores() int
}

// Loader resolves configuration against an injectable environment. The zero
// value is not usable; construct via fields or use the package-level Load.
type Loader struct {
	Hardware Hardware
	Lookup   func(string) (string, bool)
	Logger   *slog.Logger
}

// Load reads the config file at path and fully resolves it against the real
// host: real hardware probe, real process environment.
func Load(path string, logger *slog.Logger) (Config, error) {
	l := Loader{Hardware: hw.New(), Lookup: os.LookupEnv, Logger: logger}
	return l.Load(path)
}

// Load parses the file, applies environment overrides, and resolves every
// remaining "auto" field. A missing file, malformed YAML, or a bad override
// value is fatal; hardware probe failures only degrade the resolution.
func (l Loader) Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	if err := applyEnvOverrides(&cfg, l.Lookup); err != nil {
		return Config{}, err
	}

	l.resolve(&cfg)
	l.logSummary(cfg)
	return cfg, nil
}

func (l Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

// logSummary emits the resolved values once at startup.
func (l Loader) logSummary(cfg Config) {
	l.logger().Info("configuration resolved",
		slog.String("os", l.Hardware.OperatingSystem()),
		slog.String("arch", l.Hardware.Architecture()),
		slog.String("device", cfg.Model.Device),
		slog.String("compute_type", cfg.Model.ComputeType),
		slog.String("model", cfg.Model.Size),
		slog.Int("cpu_threads", cfg.Concurrency.CPUThreads),
		slog.Int("max_workers", cfg.Concurrency.MaxWorkers),
		slog.String("socket_path", cfg.Service.SocketPath),
		slog.Int("max_audio_size_mb", cfg.Service.MaxAudioSizeMB),
	)
}
