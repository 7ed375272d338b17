package job

import (
	"context"
	"log"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"audioscribe/internal/audio"
	"audioscribe/internal/stitch"
	"audioscribe/internal/transcriber"
)

// prober and segmenter are the slices of internal/audio the runner needs,
// kept as interfaces so tests can substitute fakes.
type prober interface {
	Probe(ctx context.Context, path string) (audio.Asset, error)
}

type segmenter interface {
	Segment(ctx context.Context, asset audio.Asset, maxChunk time.Duration, dir string) ([]audio.Segment, error)
}

// Options configures a Runner.
type Options struct {
	// Workers bounds concurrent segment transcriptions. 0 picks a
	// provider-appropriate default via DefaultWorkers.
	Workers int
	// MaxChunk is the per-segment duration limit.
	MaxChunk time.Duration
	// SampleRate for segment WAV output.
	SampleRate int
	// OnStage is called on every state transition (optional).
	OnStage func(Status)
	// OnPlanned is called once the segment count is known, before the
	// first transcription starts (optional).
	OnPlanned func(total int)
	// OnSegmentDone is called as each segment resolves (optional).
	OnSegmentDone func(done, total int)
}

// Result is the outcome of a finished job.
type Result struct {
	Job        Job
	Asset      audio.Asset
	Transcript stitch.Transcript
	Segments   []stitch.SegmentResult
	Errors     []SegmentError
}

// Runner executes one transcription job end to end: probe, segment, fan
// out transcriptions across a bounded worker pool, stitch.
type Runner struct {
	prober    prober
	segmenter segmenter
	adapter   transcriber.Adapter
	opts      Options
}

func NewRunner(adapter transcriber.Adapter, opts Options) *Runner {
	if opts.MaxChunk <= 0 {
		opts.MaxChunk = 10 * time.Minute
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Runner{
		prober:    audio.NewProber(),
		segmenter: audio.NewSegmenter(opts.SampleRate),
		adapter:   adapter,
		opts:      opts,
	}
}

// DefaultWorkers returns the conservative worker pool size for a provider.
// Local whisper holds the model in memory per invocation, so it runs one
// segment at a time; cloud backends tolerate modest parallelism.
func DefaultWorkers(provider string) int {
	if provider == "whisper-cpp" {
		return 1
	}
	return 4
}

// Run executes the job for inputPath. A DecodeError on the asset is fatal.
// Per-segment model failures are recorded and surface as gap spans; the job
// fails outright only when every segment fails.
func (r *Runner) Run(ctx context.Context, inputPath string) (*Result, error) {
	tracker := NewTracker()
	result := &Result{}

	fail := func(err error) (*Result, error) {
		_ = tracker.Transition(Failed)
		r.emitStage(Failed)
		result.Job = tracker.Snapshot()
		return result, err
	}

	if err := tracker.Transition(Segmenting); err != nil {
		return fail(err)
	}
	r.emitStage(Segmenting)

	asset, err := r.prober.Probe(ctx, inputPath)
	if err != nil {
		return fail(err)
	}
	result.Asset = asset

	workDir, err := os.MkdirTemp("", "audioscribe-*")
	if err != nil {
		return fail(err)
	}
	defer os.RemoveAll(workDir)

	segments, err := r.segmenter.Segment(ctx, asset, r.opts.MaxChunk, workDir)
	if err != nil {
		return fail(err)
	}

	if err := tracker.Transition(Transcribing); err != nil {
		return fail(err)
	}
	r.emitStage(Transcribing)
	if r.opts.OnPlanned != nil {
		r.opts.OnPlanned(len(segments))
	}
	log.Printf("job %s: transcribing %d segment(s) with %d worker(s)",
		tracker.Snapshot().ID, len(segments), r.opts.Workers)

	results := make([]stitch.SegmentResult, len(segments))
	var done atomic.Int64

	// Bounded fan-out. Workers never return an error: a segment failure is
	// recorded in its slot so siblings already in flight are not cancelled.
	var g errgroup.Group
	g.SetLimit(r.opts.Workers)

	for i, seg := range segments {
		g.Go(func() error {
			res := stitch.SegmentResult{Segment: seg}
			if err := ctx.Err(); err != nil {
				res.Err = err
			} else {
				res.Transcript, res.Err = r.adapter.Transcribe(ctx, seg.Path)
			}
			if res.Err != nil {
				log.Printf("job: segment %d failed: %v", seg.Index, res.Err)
			}
			results[i] = res
			r.emitSegmentDone(int(done.Add(1)), len(segments))
			return nil
		})
	}
	// Wait() resolves every outstanding segment before stitching: output
	// ordering depends on the full segment list.
	_ = g.Wait()

	result.Segments = results
	for _, res := range results {
		if res.Err != nil {
			result.Errors = append(result.Errors, SegmentError{Index: res.Segment.Index, Err: res.Err})
		}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return fail(ctxErr)
	}
	if len(result.Errors) == len(segments) {
		return fail(&AllSegmentsFailedError{Errors: result.Errors})
	}

	if err := tracker.Transition(Stitching); err != nil {
		return fail(err)
	}
	r.emitStage(Stitching)

	transcript, err := stitch.Stitch(results)
	if err != nil {
		return fail(err)
	}
	result.Transcript = transcript

	final := Complete
	if transcript.HasGaps() {
		final = CompleteWithGaps
	}
	if err := tracker.Transition(final); err != nil {
		return fail(err)
	}
	r.emitStage(final)

	result.Job = tracker.Snapshot()
	return result, nil
}

func (r *Runner) emitStage(s Status) {
	if r.opts.OnStage != nil {
		r.opts.OnStage(s)
	}
}

func (r *Runner) emitSegmentDone(done, total int) {
	if r.opts.OnSegmentDone != nil {
		r.opts.OnSegmentDone(done, total)
	}
}

// NewRunnerForTests constructs a runner with injectable dependencies.
func NewRunnerForTests(p prober, s segmenter, adapter transcriber.Adapter, opts Options) *Runner {
	if opts.MaxChunk <= 0 {
		opts.MaxChunk = 10 * time.Minute
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Runner{prober: p, segmenter: s, adapter: adapter, opts: opts}
}
