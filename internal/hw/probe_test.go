package hw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeArch(t *testing.T) {
	tests := []struct {
		goarch string
		want   string
	}{
		{goarch: "arm64", want: ArchARM64},
		{goarch: "aarch64", want: ArchARM64},
		{goarch: "ARM64", want: ArchARM64},
		{goarch: "amd64", want: ArchX86},
		{goarch: "386", want: ArchX86},
		{goarch: "riscv64", want: ArchX86},
	}

	for _, tc := range tests {
		t.Run(tc.goarch, func(t *testing.T) {
			require.Equal(t, tc.want, normalizeArch(tc.goarch))
		})
	}
}

func TestParseMemoryMB(t *testing.T) {
	tests := []struct {
		name   string
		out    string
		wantMB int
		wantOK bool
	}{
		{name: "single gpu", out: "24564\n", wantMB: 24564, wantOK: true},
		{name: "multi gpu uses first", out: "8192\n16384\n", wantMB: 8192, wantOK: true},
		{name: "surrounding whitespace", out: "  6144  \n", wantMB: 6144, wantOK: true},
		{name: "empty output", out: "", wantOK: false},
		{name: "garbage", out: "N/A", wantOK: false},
		{name: "zero", out: "0", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mb, ok := parseMemoryMB(tc.out)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.Equal(t, tc.wantMB, mb)
			}
		})
	}
}

func TestAcceleratorAvailable(t *testing.T) {
	avail := &Probe{runSMI: func(args ...string) (string, error) {
		return "GPU 0: NVIDIA GeForce RTX 4090 (UUID: GPU-1234)\n", nil
	}}
	require.True(t, avail.AcceleratorAvailable())

	missing := &Probe{runSMI: func(args ...string) (string, error) {
		return "", errors.New("exec: \"nvidia-smi\": executable file not found in $PATH")
	}}
	require.False(t, missing.AcceleratorAvailable())

	empty := &Probe{runSMI: func(args ...string) (string, error) { return "\n", nil }}
	require.False(t, empty.AcceleratorAvailable())
}

func TestAcceleratorMemoryMBDegradesToUnknown(t *testing.T) {
	p := &Probe{runSMI: func(args ...string) (string, error) {
		return "", errors.New("no devices were found")
	}}

	mb, ok := p.AcceleratorMemoryMB()
	require.False(t, ok)
	require.Zero(t, mb)
}

func TestPhysicalCoresNeverZero(t *testing.T) {
	p := New()
	require.GreaterOrEqual(t, p.PhysicalCores(), 1)
}
