// Package config loads, overrides, and resolves whisperd configuration.
//
// Resolution happens once at startup: file values are layered over defaults,
// WHISPER_<SECTION>_<KEY> environment overrides are layered over both, and the
// remaining "auto" sentinels are resolved against probed hardware. The
// returned Config is a plain value and is never mutated afterward.
package config

// Device selects the compute device the model runs on.
const (
	DeviceAuto = "auto"
	DeviceCUDA = "cuda"
	DeviceCPU  = "cpu"
)

// Compute types mirror the precision modes the inference backend accepts.
const (
	ComputeAuto        = "auto"
	ComputeFloat16     = "float16"
	ComputeInt8Float16 = "int8_float16"
	ComputeInt8        = "int8"
	ComputeFloat32     = "float32"
)

// Config is the fully resolved runtime configuration. After Load returns, no
// field holds an "auto" sentinel or a zero meaning "auto".
type Config struct {
	Service     ServiceConfig     `yaml:"service"`
	Model       ModelConfig       `yaml:"model"`
	Inference   InferenceConfig   `yaml:"inference"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// ServiceConfig controls the listening endpoint and request limits.
type ServiceConfig struct {
	SocketPath     string `yaml:"socket_path"`
	LogLevel       string `yaml:"log_level"`
	MaxAudioSizeMB int    `yaml:"max_audio_size_mb"`
}

// MaxAudioBytes returns the inline/remote payload limit in bytes.
func (s ServiceConfig) MaxAudioBytes() int64 {
	return int64(s.MaxAudioSizeMB) * 1024 * 1024
}

// ModelConfig selects the model weights and where they run.
type ModelConfig struct {
	Size        string `yaml:"size"`
	DownloadDir string `yaml:"download_dir"`
	Device      string `yaml:"device"`
	ComputeType string `yaml:"compute_type"`
}

// InferenceConfig carries the decoding parameters passed to the engine on
// every request.
type InferenceConfig struct {
	BeamSize                  int     `yaml:"beam_size"`
	VADFilter                 bool    `yaml:"vad_filter"`
	VADMinSilenceMS           int     `yaml:"vad_min_silence_ms"`
	NoSpeechThreshold         float64 `yaml:"no_speech_threshold"`
	LogProbThreshold          float64 `yaml:"log_prob_threshold"`
	CompressionRatioThreshold float64 `yaml:"compression_ratio_threshold"`
	WordTimestamps            bool    `yaml:"word_timestamps"`
	InitialPrompt             string  `yaml:"initial_prompt"`
}

// ConcurrencyConfig bounds request-level and engine-level parallelism.
type ConcurrencyConfig struct {
	MaxWorkers int `yaml:"max_workers"`
	CPUThreads int `yaml:"cpu_threads"`
	NumWorkers int `yaml:"num_workers"`
}
