package audio

import "time"

// Asset describes a probed input audio file. It is immutable once returned
// by Probe; segmentation never mutates the source file.
type Asset struct {
	Path       string
	Duration   time.Duration
	SampleRate int
	Channels   int
	FormatName string // container/demuxer name as reported by ffprobe (e.g. "mp3", "wav")
	Size       int64  // file size in bytes
}

// Span is a planned time slice of an asset, before any file is cut.
type Span struct {
	Start    time.Duration
	Duration time.Duration
}

// End returns the exclusive end offset of the span.
func (s Span) End() time.Duration {
	return s.Start + s.Duration
}

// Segment is a materialized span: a bounded-duration WAV file cut from the
// asset, suitable as model input. Segments are temp files owned by the job
// and discardable once transcribed.
type Segment struct {
	Index    int
	Path     string
	Start    time.Duration
	Duration time.Duration
}

// End returns the exclusive end offset of the segment within the asset.
func (s Segment) End() time.Duration {
	return s.Start + s.Duration
}
