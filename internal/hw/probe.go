// Package hw probes host hardware capabilities for configuration resolution.
//
// Every probe is best-effort: a missing diagnostic tool, an exec failure, or
// unparseable output degrades to a fallback value and is never surfaced as an
// error to callers.
package hw

import (
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
)

// Canonical architecture tokens. Every ARM-family identifier maps to ArchARM64;
// everything else maps to ArchX86.
const (
	ArchARM64 = "arm64"
	ArchX86   = "x86_64"
)

// fallbackCores is used when neither physical nor logical core counts resolve.
const fallbackCores = 4

// Probe answers hardware capability queries.
type Probe struct {
	// runSMI invokes the NVIDIA diagnostic tool; replaced in tests.
	runSMI func(args ...string) (string, error)
}

// New returns a Probe backed by the real host.
func New() *Probe {
	return &Probe{runSMI: runNvidiaSMI}
}

// Architecture returns the canonical CPU architecture token.
func (p *Probe) Architecture() string {
	return normalizeArch(runtime.GOARCH)
}

// OperatingSystem returns the lowercase OS family name.
func (p *Probe) OperatingSystem() string {
	return runtime.GOOS
}

// AcceleratorAvailable reports whether at least one CUDA device is visible.
// Any failure to query counts as unavailable.
func (p *Probe) AcceleratorAvailable() bool {
	out, err := p.runSMI("--list-gpus")
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) != ""
}

// PhysicalCores returns the physical core count, falling back to the logical
// count and finally to a fixed default. It never fails.
func (p *Probe) PhysicalCores() int {
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return fallbackCores
}

// AcceleratorMemoryMB returns the total memory of the first detected
// accelerator in megabytes. The second return is false when the diagnostic
// tool is absent or its output cannot be parsed.
func (p *Probe) AcceleratorMemoryMB() (int, bool) {
	out, err := p.runSMI("--query-gpu=memory.total", "--format=csv,noheader,nounits")
	if err != nil {
		return 0, false
	}
	return parseMemoryMB(out)
}

// normalizeArch collapses ARM-family identifiers into one token.
func normalizeArch(goarch string) string {
	switch strings.ToLower(goarch) {
	case "arm64", "aarch64", "arm":
		return ArchARM64
	default:
		return ArchX86
	}
}

// parseMemoryMB reads the first line of nvidia-smi memory output.
func parseMemoryMB(out string) (int, bool) {
	first, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	mb, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil || mb <= 0 {
		return 0, false
	}
	return mb, true
}

func runNvidiaSMI(args ...string) (string, error) {
	out, err := exec.Command("nvidia-smi", args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
