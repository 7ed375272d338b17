package audio

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Segmenter cuts an asset into bounded-duration mono WAV chunks sized for
// model input via ffmpeg.
type Segmenter struct {
	ffmpegPath string
	runner     commandRunner
	sampleRate int
}

func NewSegmenter(sampleRate int) *Segmenter {
	if sampleRate <= 0 {
		sampleRate = 16000
	}
	return &Segmenter{
		ffmpegPath: "ffmpeg",
		runner:     &execRunner{},
		sampleRate: sampleRate,
	}
}

// Plan splits a total duration into ceil(total/maxChunk) contiguous spans
// covering [0, total) with no gaps and no overlaps. Spans are sized evenly
// (total divided by the span count) rather than maxChunk-sized with a short
// tail, so the final span differs from the others only by rounding.
func Plan(total, maxChunk time.Duration) ([]Span, error) {
	if total <= 0 {
		return nil, fmt.Errorf("invalid asset duration: %v", total)
	}
	if maxChunk <= 0 {
		return nil, fmt.Errorf("invalid chunk duration: %v", maxChunk)
	}

	// integer ceiling: durations are integer nanoseconds, and float division
	// can round an exact multiple up to one span too many
	count := int((total + maxChunk - 1) / maxChunk)
	if count < 1 {
		count = 1
	}

	even := total / time.Duration(count)
	spans := make([]Span, count)
	for i := range spans {
		spans[i].Start = time.Duration(i) * even
		spans[i].Duration = even
	}
	// absorb integer-division rounding into the final span
	last := &spans[count-1]
	last.Duration = total - last.Start

	return spans, nil
}

// Segment plans and cuts the asset into chunk files under dir.
// The returned segments appear in original time order.
func (s *Segmenter) Segment(ctx context.Context, asset Asset, maxChunk time.Duration, dir string) ([]Segment, error) {
	spans, err := Plan(asset.Duration, maxChunk)
	if err != nil {
		return nil, err
	}
	return s.Cut(ctx, asset, spans, dir)
}

// Cut materializes each span as a 16-bit PCM mono WAV file in dir.
func (s *Segmenter) Cut(ctx context.Context, asset Asset, spans []Span, dir string) ([]Segment, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	segments := make([]Segment, 0, len(spans))
	for i, span := range spans {
		outPath := filepath.Join(dir, fmt.Sprintf("segment-%03d.wav", i))

		args := s.cutArgs(asset.Path, span, outPath)
		result, err := s.runner.Run(ctx, s.ffmpegPath, args...)
		if err != nil {
			log.Printf("segmenter: ffmpeg failed cutting span %d of %s: %v (stderr: %s)",
				i, asset.Path, err, result.Stderr)
			return nil, NewDecodeError(asset.Path, fmt.Errorf("cut span %d [%v, %v): %w", i, span.Start, span.End(), err))
		}
		if _, err := os.Stat(outPath); err != nil {
			return nil, NewDecodeError(asset.Path, fmt.Errorf("ffmpeg completed but segment %d is missing: %w", i, err))
		}

		segments = append(segments, Segment{
			Index:    i,
			Path:     outPath,
			Start:    span.Start,
			Duration: span.Duration,
		})
	}

	log.Printf("segmenter: cut %s into %d segment(s)", asset.Path, len(segments))
	return segments, nil
}

// cutArgs builds the ffmpeg arguments for one span: seek, bounded duration,
// audio only, downmixed to mono s16 PCM at the configured rate.
func (s *Segmenter) cutArgs(input string, span Span, outPath string) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", input,
		"-ss", formatSeconds(span.Start),
		"-t", formatSeconds(span.Duration),
		"-vn",
		"-ac", "1",
		"-ar", strconv.Itoa(s.sampleRate),
		"-c:a", "pcm_s16le",
		outPath,
	}
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}

// NewSegmenterForTests constructs a segmenter with an injectable runner.
func NewSegmenterForTests(ffmpegPath string, runner commandRunner, sampleRate int) *Segmenter {
	return &Segmenter{ffmpegPath: ffmpegPath, runner: runner, sampleRate: sampleRate}
}
