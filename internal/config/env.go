package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix is the leading token of every override variable, e.g.
// WHISPER_MODEL_SIZE or WHISPER_SERVICE_SOCKET_PATH.
const EnvPrefix = "WHISPER"

// envField binds one WHISPER_<SECTION>_<KEY> variable to a typed config
// field. Coercion happens against the declared field type, so a malformed
// value fails loudly instead of being silently dropped.
type envField struct {
	section string
	key     string
	apply   func(raw string) error
}

// envSchema enumerates every overridable field of cfg.
func envSchema(cfg *Config) []envField {
	return []envField{
		{"service", "socket_path", stringField(&cfg.Service.SocketPath)},
		{"service", "log_level", stringField(&cfg.Service.LogLevel)},
		{"service", "max_audio_size_mb", intField(&cfg.Service.MaxAudioSizeMB)},

		{"model", "size", stringField(&cfg.Model.Size)},
		{"model", "download_dir", stringField(&cfg.Model.DownloadDir)},
		{"model", "device", stringField(&cfg.Model.Device)},
		{"model", "compute_type", stringField(&cfg.Model.ComputeType)},

		{"inference", "beam_size", intField(&cfg.Inference.BeamSize)},
		{"inference", "vad_filter", boolField(&cfg.Inference.VADFilter)},
		{"inference", "vad_min_silence_ms", intField(&cfg.Inference.VADMinSilenceMS)},
		{"inference", "no_speech_threshold", floatField(&cfg.Inference.NoSpeechThreshold)},
		{"inference", "log_prob_threshold", floatField(&cfg.Inference.LogProbThreshold)},
		{"inference", "compression_ratio_threshold", floatField(&cfg.Inference.CompressionRatioThreshold)},
		{"inference", "word_timestamps", boolField(&cfg.Inference.WordTimestamps)},
		{"inference", "initial_prompt", stringField(&cfg.Inference.InitialPrompt)},

		{"concurrency", "max_workers", intField(&cfg.Concurrency.MaxWorkers)},
		{"concurrency", "cpu_threads", intField(&cfg.Concurrency.CPUThreads)},
		{"concurrency", "num_workers", intField(&cfg.Concurrency.NumWorkers)},
	}
}

// applyEnvOverrides layers environment values over cfg. An unset variable
// leaves the existing value untouched; a set variable that cannot be coerced
// to the field's type is a fatal configuration error.
func applyEnvOverrides(cfg *Config, lookup func(string) (string, bool)) error {
	for _, f := range envSchema(cfg) {
		name := envName(f.section, f.key)
		raw, ok := lookup(name)
		if !ok {
			continue
		}
		if err := f.apply(raw); err != nil {
			return fmt.Errorf("environment override %s: %w", name, err)
		}
	}
	return nil
}

func envName(section, key string) string {
	return EnvPrefix + "_" + strings.ToUpper(section) + "_" + strings.ToUpper(key)
}

func stringField(dst *string) func(string) error {
	return func(raw string) error {
		*dst = raw
		return nil
	}
}

func intField(dst *int) func(string) error {
	return func(raw string) error {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("expected integer, got %q", raw)
		}
		*dst = n
		return nil
	}
}

func floatField(dst *float64) func(string) error {
	return func(raw string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("expected number, got %q", raw)
		}
		*dst = f
		return nil
	}
}

func boolField(dst *bool) func(string) error {
	return func(raw string) error {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "1", "true", "yes":
			*dst = true
		case "0", "false", "no":
			*dst = false
		default:
			return fmt.Errorf("expected boolean (1/true/yes or 0/false/no), got %q", raw)
		}
		return nil
	}
}
