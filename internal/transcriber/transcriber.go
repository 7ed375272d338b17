package transcriber

import (
	"context"
	"fmt"
	"time"

	"audioscribe/internal/models/whisper"
)

// Span is a timestamped slice of transcribed text. Timestamps are relative
// to the start of the transcribed segment, not the original asset.
type Span struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// SegmentTranscript is the model output for one audio segment.
type SegmentTranscript struct {
	Text  string
	Spans []Span
}

// Adapter is an opaque transcription backend: one WAV file in, one
// SegmentTranscript out. Implementations must be safe for concurrent use;
// the job runner fans segments out across a bounded worker pool.
type Adapter interface {
	Transcribe(ctx context.Context, wavPath string) (SegmentTranscript, error)
	// Close releases any model runtime held by the adapter.
	Close() error
}

// Config selects and parameterizes a transcription backend.
type Config struct {
	Provider string
	APIKey   string
	Language string
	Model    string
	Threads  int // CPU threads for local transcription (0 = whisper-cli default)
}

// NewAdapter constructs the adapter for the configured provider. Model
// resolution (API key checks, local model install checks) happens here,
// once per job, so per-segment calls carry no setup cost.
func NewAdapter(config Config) (Adapter, error) {
	switch config.Provider {
	case "openai":
		if config.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key required")
		}
		return NewOpenAIAdapter(config), nil

	case "whisper-cpp":
		modelPath, err := whisper.GetInstalledPath(config.Model)
		if err != nil {
			return nil, fmt.Errorf("whisper model %q: %w (run: audioscribe model download %s)",
				config.Model, err, config.Model)
		}
		return NewWhisperCppAdapter(modelPath, config.Language, config.Threads), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Provider)
	}
}
