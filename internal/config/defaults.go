package config

// Default returns the configuration base that file values and environment
// overrides are layered onto.
func Default() Config {
	return Config{
		Service: ServiceConfig{
			SocketPath:     "/tmp/whisper.sock",
			LogLevel:       "info",
			MaxAudioSizeMB: 100,
		},
		Model: ModelConfig{
			Size:        "large-v3",
			DownloadDir: "/var/lib/whisper/models",
			Device:      DeviceAuto,
			ComputeType: ComputeAuto,
		},
		Inference: InferenceConfig{
			BeamSize:                  5,
			VADFilter:                 true,
			VADMinSilenceMS:           500,
			NoSpeechThreshold:         0.6,
			LogProbThreshold:          -1.0,
			CompressionRatioThreshold: 2.4,
			WordTimestamps:            true,
			InitialPrompt:             "",
		},
		Concurrency: ConcurrencyConfig{
			MaxWorkers: 0, // auto: 1 on cuda, 2 on cpu
			CPUThreads: 0, // auto: half the physical cores
			NumWorkers: 1,
		},
	}
}
