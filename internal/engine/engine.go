// Package engine defines the inference engine contract the dispatcher calls
// into, plus the whisper.cpp-backed implementation and a scriptable mock.
//
// The engine is treated as an opaque collaborator: whisperd hands it resolved
// inference options and consumes a pull-based segment stream. Backends apply
// the options their decoder exposes; unsupported knobs are accepted and
// ignored rather than rejected.
package engine

import (
	"context"
	"time"

	"github.com/rbright/whisperd/internal/source"
)

// Options carries the per-request decoding parameters. Fields mirror the
// resolved inference configuration with the request's own overrides applied.
type Options struct {
	// Language is the caller's hint; empty delegates detection to the engine.
	Language string

	BeamSize       int
	VADFilter      bool
	VADMinSilence  time.Duration
	WordTimestamps bool

	// InitialPrompt seeds the decoder; empty means no prompt is passed.
	InitialPrompt string

	NoSpeechThreshold         float64
	LogProbThreshold          float64
	CompressionRatioThreshold float64

	// CPUThreads bounds decoder threads when inference runs on cpu.
	CPUThreads int
}

// Word is one recognized word with timing in seconds.
type Word struct {
	Start       float64
	End         float64
	Text        string
	Probability float32
}

// Segment is one contiguous span of recognized speech.
type Segment struct {
	Start      float64
	End        float64
	Text       string
	AvgLogProb float32
	Words      []Word
}

// Info is the one-shot metadata produced alongside a segment stream.
type Info struct {
	Language            string
	LanguageProbability float32
}

// Stream is a finite, pull-based, non-restartable segment sequence. Next
// returns io.EOF after the final segment. Close releases decode state and
// stops production; it is safe to call at any point.
type Stream interface {
	Next() (Segment, error)
	Close() error
}

// Engine runs inference. Implementations must be safe for concurrent use up
// to the configured worker count; whether calls serialize internally is the
// backend's concern.
type Engine interface {
	Transcribe(ctx context.Context, input source.Resolved, opts Options) (Stream, Info, error)
}
