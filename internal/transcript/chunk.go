// Package transcript maps engine segments onto protocol transcript chunks.
package transcript

import (
	"strings"

	"github.com/rbright/whisperd/internal/engine"
	speechv1 "github.com/rbright/whisperd/proto/gen/go/speech/v1"
)

// ChunkFromSegment converts one engine segment into its wire form: text is
// whitespace-trimmed, words are copied in engine order, and speaker identity
// is always empty because this service does not diarize.
func ChunkFromSegment(seg engine.Segment) *speechv1.TranscriptChunk {
	chunk := &speechv1.TranscriptChunk{
		StartTime:  seg.Start,
		EndTime:    seg.End,
		Text:       strings.TrimSpace(seg.Text),
		SpeakerId:  "",
		Confidence: seg.AvgLogProb,
	}
	for _, w := range seg.Words {
		chunk.Words = append(chunk.Words, &speechv1.Word{
			StartTime:  w.Start,
			EndTime:    w.End,
			Text:       w.Text,
			Confidence: w.Probability,
		})
	}
	return chunk
}
