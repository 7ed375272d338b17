package stitch

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"audioscribe/internal/audio"
	"audioscribe/internal/transcriber"
)

// Span is one timestamped slice of the final transcript, relative to the
// start of the original asset. A Gap span stands in for a segment whose
// transcription failed; it carries no text of its own.
type Span struct {
	Start   time.Duration
	End     time.Duration
	Text    string
	Speaker string
	Gap     bool
}

// Transcript is the stitched result for a whole asset. Spans are ordered by
// source segment and monotonically non-decreasing in start time.
type Transcript struct {
	Language string
	Duration time.Duration
	Spans    []Span
}

// Text joins all non-gap span texts in order.
func (t *Transcript) Text() string {
	var parts []string
	for _, s := range t.Spans {
		if s.Gap {
			continue
		}
		parts = append(parts, strings.TrimSpace(s.Text))
	}
	return strings.Join(parts, " ")
}

// HasGaps reports whether any segment failed and was replaced by a gap span.
func (t *Transcript) HasGaps() bool {
	for _, s := range t.Spans {
		if s.Gap {
			return true
		}
	}
	return false
}

// SegmentResult pairs a segment with its transcription outcome.
// Exactly one of Transcript and Err is meaningful.
type SegmentResult struct {
	Segment    audio.Segment
	Transcript transcriber.SegmentTranscript
	Err        error
}

// Stitch merges per-segment transcripts into one timeline. Each span's
// timestamps are offset by its segment's start within the asset, and
// segments are concatenated in index order regardless of the order in which
// transcriptions completed. A failed segment contributes exactly one gap
// span covering its time range; it is never silently dropped.
func Stitch(results []SegmentResult) (Transcript, error) {
	if len(results) == 0 {
		return Transcript{}, fmt.Errorf("no segment results to stitch")
	}

	ordered := make([]SegmentResult, len(results))
	copy(ordered, results)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Segment.Index < ordered[j].Segment.Index
	})

	var out Transcript
	var cursor time.Duration

	for _, r := range ordered {
		seg := r.Segment

		if r.Err != nil {
			out.Spans = append(out.Spans, Span{
				Start: seg.Start,
				End:   seg.End(),
				Gap:   true,
			})
			cursor = seg.End()
			continue
		}

		spans := r.Transcript.Spans
		if len(spans) == 0 && strings.TrimSpace(r.Transcript.Text) != "" {
			// backend returned text without timings; cover the whole segment
			spans = []transcriber.Span{{Start: 0, End: seg.Duration, Text: r.Transcript.Text}}
		}

		for _, s := range spans {
			span := Span{
				Start: seg.Start + s.Start,
				End:   seg.Start + s.End,
				Text:  strings.TrimSpace(s.Text),
			}
			// model timings can jitter slightly past segment bounds;
			// clamp so output stays monotonically non-decreasing
			if span.Start < cursor {
				span.Start = cursor
			}
			if span.End < span.Start {
				span.End = span.Start
			}
			cursor = span.Start
			out.Spans = append(out.Spans, span)
		}
	}

	last := ordered[len(ordered)-1].Segment
	out.Duration = last.End()

	return out, nil
}
