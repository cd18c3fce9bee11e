package transcript

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbright/whisperd/internal/engine"
)

func TestChunkFromSegment(t *testing.T) {
	seg := engine.Segment{
		Start:      1.28,
		End:        4.96,
		Text:       "  Hello there.  ",
		AvgLogProb: -0.21,
		Words: []engine.Word{
			{Start: 1.28, End: 2.0, Text: " Hello", Probability: 0.94},
			{Start: 2.0, End: 4.96, Text: " there.", Probability: 0.88},
		},
	}

	chunk := ChunkFromSegment(seg)

	require.Equal(t, 1.28, chunk.GetStartTime())
	require.Equal(t, 4.96, chunk.GetEndTime())
	require.Equal(t, "Hello there.", chunk.GetText())
	require.Empty(t, chunk.GetSpeakerId())
	require.InDelta(t, -0.21, chunk.GetConfidence(), 1e-6)

	require.Len(t, chunk.GetWords(), 2)
	require.Equal(t, " Hello", chunk.GetWords()[0].GetText())
	require.Equal(t, 2.0, chunk.GetWords()[0].GetEndTime())
	require.InDelta(t, 0.88, chunk.GetWords()[1].GetConfidence(), 1e-6)
}

func TestChunkFromSegmentNoWords(t *testing.T) {
	chunk := ChunkFromSegment(engine.Segment{Text: "quiet"})

	require.Equal(t, "quiet", chunk.GetText())
	require.Empty(t, chunk.GetWords())
}
