package config

import (
	"log/slog"

	"github.com/rbright/whisperd/internal/hw"
)

// float16VRAMThresholdMB is the accelerator memory above which full float16
// weights fit comfortably; below it the int8/float16 mix halves the footprint.
const float16VRAMThresholdMB = 8000

// resolve replaces every remaining "auto" sentinel with a concrete value.
// Order matters: compute type and worker count depend on the resolved device.
func (l Loader) resolve(cfg *Config) {
	cfg.Model.Device = l.resolveDevice(cfg.Model.Device)
	cfg.Model.ComputeType = l.resolveComputeType(cfg.Model.ComputeType, cfg.Model.Device)
	cfg.Concurrency.CPUThreads = l.resolveCPUThreads(cfg.Concurrency.CPUThreads)
	cfg.Concurrency.MaxWorkers = resolveMaxWorkers(cfg.Concurrency.MaxWorkers, cfg.Model.Device)
}

// resolveDevice selects cuda when an accelerator is visible, cpu otherwise.
// An explicit non-auto request passes through verbatim.
func (l Loader) resolveDevice(requested string) string {
	if requested != DeviceAuto {
		return requested
	}
	if l.Hardware.AcceleratorAvailable() {
		return DeviceCUDA
	}
	if l.Hardware.OperatingSystem() == "darwin" && l.Hardware.Architecture() == hw.ArchARM64 {
		// Apple Silicon has Metal, but the inference backend has no path to
		// it; cpu+int8 is still the right resolution.
		l.logger().Info("Apple Silicon detected, resolving device to cpu")
	}
	return DeviceCPU
}

// resolveComputeType picks the numeric precision for the resolved device.
// On cuda the choice follows accelerator memory; an unanswerable memory query
// optimistically assumes float16 fits. On cpu int8 is the right answer on
// every architecture.
func (l Loader) resolveComputeType(requested, device string) string {
	if requested != ComputeAuto {
		return requested
	}
	if device == DeviceCUDA {
		mb, ok := l.Hardware.AcceleratorMemoryMB()
		if !ok {
			return ComputeFloat16
		}
		if mb >= float16VRAMThresholdMB {
			return ComputeFloat16
		}
		l.logger().Info("limited accelerator memory, selecting int8_float16",
			slog.Int("vram_mb", mb))
		return ComputeInt8Float16
	}
	return ComputeInt8
}

// resolveCPUThreads uses half the physical cores, floored at 1, leaving
// headroom for concurrent requests. Zero and negative values both resolve;
// a negative thread count has no meaning downstream.
func (l Loader) resolveCPUThreads(requested int) int {
	if requested > 0 {
		return requested
	}
	cores := l.Hardware.PhysicalCores()
	resolved := max(1, cores/2)
	l.logger().Info("detected physical cores",
		slog.Int("cores", cores),
		slog.Int("cpu_threads", resolved))
	return resolved
}

// resolveMaxWorkers bounds concurrent requests. A cuda device serializes
// inference internally, so extra workers buy nothing; on cpu two requests can
// share the thread pool. Zero and negative values both resolve; the server
// sizes stream limits with an unsigned cast, so a negative count must never
// survive resolution.
func resolveMaxWorkers(requested int, device string) int {
	if requested > 0 {
		return requested
	}
	if device == DeviceCUDA {
		return 1
	}
	return 2
}
