package engine

import (
	"testing"
	"time"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/stretchr/testify/require"
)

func TestConvertSegmentTimingAndText(t *testing.T) {
	seg := whisper.Segment{
		Start: 1500 * time.Millisecond,
		End:   3500 * time.Millisecond,
		Text:  "  Hello world  ",
	}

	out := convertSegment(seg, false)
	require.InDelta(t, 1.5, out.Start, 1e-9)
	require.InDelta(t, 3.5, out.End, 1e-9)
	require.Equal(t, "  Hello world  ", out.Text) // trimming is the dispatcher's job
	require.Empty(t, out.Words)
}

func TestConvertSegmentWords(t *testing.T) {
	seg := whisper.Segment{
		Start: 0,
		End:   time.Second,
		Text:  "Hello world",
		Tokens: []whisper.Token{
			{Text: "[_BEG_]", P: 1.0},
			{Text: "Hello", P: 0.9, Start: 0, End: 400 * time.Millisecond},
			{Text: " world", P: 0.8, Start: 400 * time.Millisecond, End: time.Second},
		},
	}

	out := convertSegment(seg, true)
	require.Len(t, out.Words, 2)
	require.Equal(t, "Hello", out.Words[0].Text)
	require.InDelta(t, 0.4, out.Words[0].End, 1e-9)
	require.Equal(t, float32(0.8), out.Words[1].Probability)
	// Average log-probability over the two real tokens only.
	require.Negative(t, out.AvgLogProb)
}

func TestConvertSegmentNoTokens(t *testing.T) {
	out := convertSegment(whisper.Segment{Text: "silence"}, true)
	require.Zero(t, out.AvgLogProb)
	require.Empty(t, out.Words)
}

func TestIsSpecialToken(t *testing.T) {
	require.True(t, isSpecialToken("[_BEG_]"))
	require.True(t, isSpecialToken("[_TT_150]"))
	require.False(t, isSpecialToken("Hello"))
	require.False(t, isSpecialToken("[bracketed]"))
}

func TestRequestLanguageDefaultsToAutoDetection(t *testing.T) {
	// An empty hint must become the auto-detection sentinel; the decoder's
	// own default language is English.
	require.Equal(t, "auto", requestLanguage(""))
	require.Equal(t, "de", requestLanguage("de"))
	require.Equal(t, "auto", requestLanguage("auto"))
}

func TestModelPath(t *testing.T) {
	require.Equal(t, "/var/lib/whisper/models/ggml-large-v3.bin",
		ModelPath("/var/lib/whisper/models", "large-v3"))
}
