package diarize

import (
	"context"
	"time"

	"audioscribe/internal/stitch"
)

// Turn is a span of time attributed to one speaker.
type Turn struct {
	Start   time.Duration
	End     time.Duration
	Speaker string
}

// Diarizer produces speaker turns for a transcript's timeline.
type Diarizer interface {
	Diarize(ctx context.Context, t *stitch.Transcript) ([]Turn, error)
}

// Noop produces no turns; spans keep empty speaker labels.
type Noop struct{}

func (Noop) Diarize(ctx context.Context, t *stitch.Transcript) ([]Turn, error) {
	return nil, nil
}
