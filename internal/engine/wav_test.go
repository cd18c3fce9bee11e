package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"

	"github.com/rbright/whisperd/internal/source"
)

// writeTestWAV encodes 16-bit mono PCM at 16 kHz and returns the file path.
func writeTestWAV(t *testing.T, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "audio.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 16000, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{SampleRate: 16000, NumChannels: 1},
		Data:           data,
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	return path
}

func TestLoadSamplesFromPath(t *testing.T) {
	path := writeTestWAV(t, []int{0, 16384, -16384, 32767})

	samples, err := loadSamples(source.Resolved{Path: path})
	require.NoError(t, err)
	require.Len(t, samples, 4)
	require.InDelta(t, 0.0, samples[0], 1e-4)
	require.InDelta(t, 0.5, samples[1], 1e-4)
	require.InDelta(t, -0.5, samples[2], 1e-4)
	require.InDelta(t, 1.0, samples[3], 1e-3)
}

func TestLoadSamplesFromBuffer(t *testing.T) {
	path := writeTestWAV(t, []int{1024, -1024})
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	samples, err := loadSamples(source.Resolved{Data: raw})
	require.NoError(t, err)
	require.Len(t, samples, 2)
}

func TestLoadSamplesRejectsGarbage(t *testing.T) {
	_, err := loadSamples(source.Resolved{Data: []byte("not a wav file")})
	require.Error(t, err)
}

func TestLoadSamplesMissingFile(t *testing.T) {
	_, err := loadSamples(source.Resolved{Path: filepath.Join(t.TempDir(), "absent.wav")})
	require.Error(t, err)
}
