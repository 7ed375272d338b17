package diarize

import (
	"context"
	"fmt"
	"time"

	"audioscribe/internal/stitch"
)

// SilenceGap is a heuristic diarizer: it alternates between two speaker
// labels whenever the pause between consecutive spans exceeds MinGap.
// A stand-in for a real diarization pipeline, useful for two-party
// recordings such as interviews.
type SilenceGap struct {
	MinGap time.Duration
}

func NewSilenceGap(minGap time.Duration) *SilenceGap {
	if minGap <= 0 {
		minGap = 1500 * time.Millisecond
	}
	return &SilenceGap{MinGap: minGap}
}

func (d *SilenceGap) Diarize(ctx context.Context, t *stitch.Transcript) ([]Turn, error) {
	if t == nil || len(t.Spans) == 0 {
		return nil, nil
	}

	var turns []Turn
	speaker := 0
	current := Turn{Start: t.Spans[0].Start, End: t.Spans[0].End, Speaker: speakerLabel(0)}

	for _, span := range t.Spans[1:] {
		if span.Start-current.End > d.MinGap {
			turns = append(turns, current)
			speaker = 1 - speaker
			current = Turn{Start: span.Start, Speaker: speakerLabel(speaker)}
		}
		if span.End > current.End {
			current.End = span.End
		}
	}
	turns = append(turns, current)

	return turns, nil
}

// speakerLabel matches the pyannote label convention (SPEAKER_00, ...),
// which the rename flow then maps to human names.
func speakerLabel(i int) string {
	return fmt.Sprintf("SPEAKER_%02d", i)
}
