package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"

	"github.com/rbright/whisperd/internal/source"
)

// loadSamples turns resolved audio into the mono float32 samples whisper.cpp
// decodes. Local paths are opened here; buffered payloads decode in place.
func loadSamples(input source.Resolved) ([]float32, error) {
	if input.Path != "" {
		f, err := os.Open(input.Path)
		if err != nil {
			return nil, fmt.Errorf("open audio file: %w", err)
		}
		defer f.Close()
		return decodeWAV(f)
	}
	return decodeWAV(input.Reader())
}

// decodeWAV reads 16-bit PCM WAV into normalized [-1, 1] float32 samples.
func decodeWAV(r io.ReadSeeker) ([]float32, error) {
	dec := wav.NewDecoder(r)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}

	samples := make([]float32, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = float32(s) / 32768.0
	}
	return samples, nil
}
