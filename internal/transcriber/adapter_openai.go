package transcriber

import (
	"context"
	"log"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIAdapter implements Adapter for the OpenAI Whisper API.
type OpenAIAdapter struct {
	client *openai.Client
	config Config
}

func NewOpenAIAdapter(config Config) *OpenAIAdapter {
	client := openai.NewClient(config.APIKey)
	return &OpenAIAdapter{
		client: client,
		config: config,
	}
}

func (a *OpenAIAdapter) Transcribe(ctx context.Context, wavPath string) (SegmentTranscript, error) {
	// verbose_json so the response carries per-span timestamps
	req := openai.AudioRequest{
		Model:    a.config.Model,
		FilePath: wavPath,
		Language: a.config.Language,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}

	start := time.Now()
	resp, err := a.client.CreateTranscription(ctx, req)
	duration := time.Since(start)

	if err != nil {
		log.Printf("openai-adapter: API call failed after %v: %v", duration, err)
		return SegmentTranscript{}, NewModelError("openai", err)
	}

	result := SegmentTranscript{Text: resp.Text}
	for _, seg := range resp.Segments {
		result.Spans = append(result.Spans, Span{
			Start: time.Duration(seg.Start * float64(time.Second)),
			End:   time.Duration(seg.End * float64(time.Second)),
			Text:  seg.Text,
		})
	}

	log.Printf("openai-adapter: transcribed %s in %v (%d spans)", wavPath, duration, len(result.Spans))
	return result, nil
}

// Close is a no-op: the API client holds no model runtime.
func (a *OpenAIAdapter) Close() error {
	return nil
}
