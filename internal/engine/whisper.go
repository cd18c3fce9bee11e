package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	"github.com/rbright/whisperd/internal/source"
)

// Whisper runs inference through the whisper.cpp Go bindings. The model is
// loaded once; each Transcribe call gets its own decode context, which is
// what makes concurrent calls safe.
type Whisper struct {
	model  whisper.Model
	logger *slog.Logger
}

// NewWhisper loads the ggml weights for the given model size from the
// download directory, e.g. <dir>/ggml-large-v3.bin.
func NewWhisper(dir, size string, logger *slog.Logger) (*Whisper, error) {
	path := ModelPath(dir, size)
	model, err := whisper.New(path)
	if err != nil {
		return nil, fmt.Errorf("load whisper model %q: %w", path, err)
	}
	return &Whisper{model: model, logger: logger}, nil
}

// ModelPath returns the on-disk weight location for a model size.
func ModelPath(dir, size string) string {
	return filepath.Join(dir, fmt.Sprintf("ggml-%s.bin", size))
}

// Close releases the loaded model.
func (w *Whisper) Close() error {
	if w.model == nil {
		return nil
	}
	return w.model.Close()
}

// Transcribe decodes the audio, runs the model, and exposes the resulting
// segments as a Stream. whisper.cpp does not surface the VAD and threshold
// options; they are accepted and left to the decoder's own defaults.
func (w *Whisper) Transcribe(ctx context.Context, input source.Resolved, opts Options) (Stream, Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, Info{}, err
	}

	samples, err := loadSamples(input)
	if err != nil {
		return nil, Info{}, err
	}

	wctx, err := w.model.NewContext()
	if err != nil {
		return nil, Info{}, fmt.Errorf("create whisper context: %w", err)
	}

	if w.model.IsMultilingual() {
		lang := requestLanguage(opts.Language)
		if err := wctx.SetLanguage(lang); err != nil {
			return nil, Info{}, fmt.Errorf("set language %q: %w", lang, err)
		}
	}
	if opts.CPUThreads > 0 {
		wctx.SetThreads(uint(opts.CPUThreads))
	}
	if opts.BeamSize > 0 {
		wctx.SetBeamSize(opts.BeamSize)
	}
	wctx.SetTokenTimestamps(opts.WordTimestamps)
	if opts.InitialPrompt != "" {
		wctx.SetInitialPrompt(opts.InitialPrompt)
	}

	if err := wctx.Process(samples, nil, nil, nil); err != nil {
		return nil, Info{}, fmt.Errorf("whisper process: %w", err)
	}

	info := Info{Language: wctx.DetectedLanguage()}
	return &whisperStream{wctx: wctx, words: opts.WordTimestamps}, info, nil
}

// whisperStream pulls decoded segments out of a finished whisper context.
type whisperStream struct {
	wctx   whisper.Context
	words  bool
	closed bool
}

func (s *whisperStream) Next() (Segment, error) {
	if s.closed {
		return Segment{}, io.EOF
	}
	seg, err := s.wctx.NextSegment()
	if err != nil {
		return Segment{}, err // io.EOF after the last segment
	}
	return convertSegment(seg, s.words), nil
}

func (s *whisperStream) Close() error {
	s.closed = true
	return nil
}

// convertSegment maps a binding segment onto the engine contract. Confidence
// is the mean log-probability over the segment's non-special tokens, matching
// what probability-reporting backends call avg_logprob.
func convertSegment(seg whisper.Segment, withWords bool) Segment {
	out := Segment{
		Start: seg.Start.Seconds(),
		End:   seg.End.Seconds(),
		Text:  seg.Text,
	}

	var logProbSum float64
	var counted int
	for _, tok := range seg.Tokens {
		if isSpecialToken(tok.Text) {
			continue
		}
		if tok.P > 0 {
			logProbSum += math.Log(float64(tok.P))
			counted++
		}
		if withWords {
			out.Words = append(out.Words, Word{
				Start:       tok.Start.Seconds(),
				End:         tok.End.Seconds(),
				Text:        tok.Text,
				Probability: tok.P,
			})
		}
	}
	if counted > 0 {
		out.AvgLogProb = float32(logProbSum / float64(counted))
	}
	return out
}

// requestLanguage maps an empty hint to the decoder's auto-detection
// sentinel. Without it the bindings inherit whisper.cpp's default of "en"
// and non-English audio comes back transcribed as English.
func requestLanguage(hint string) string {
	if hint == "" {
		return "auto"
	}
	return hint
}

// isSpecialToken filters decoder markers such as [_BEG_] and [_TT_150].
func isSpecialToken(text string) bool {
	return strings.HasPrefix(text, "[_") && strings.HasSuffix(text, "]")
}
