// Package testutil holds shared fixtures and fakes for package tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"audioscribe/internal/audio"
	"audioscribe/internal/config"
	"audioscribe/internal/transcriber"
)

// TestConfig returns a valid configuration for testing
func TestConfig() *config.Config {
	return &config.Config{
		General: config.GeneralConfig{
			Locale: "en",
		},
		Transcription: config.TranscriptionConfig{
			Provider: "openai",
			Model:    "whisper-1",
			Language: "",
			Threads:  2,
		},
		Segmenter: config.SegmenterConfig{
			MaxChunkDuration: 10 * time.Minute,
			SampleRate:       16000,
		},
		Jobs: config.JobsConfig{
			Workers: 2,
		},
		Diarization: config.DiarizationConfig{
			Enabled: false,
			MinGap:  1500 * time.Millisecond,
		},
		Export: config.ExportConfig{
			Formats: []string{"txt"},
		},
		Providers: map[string]config.ProviderConfig{
			"openai": {APIKey: "sk-test-api-key-1234567890"},
		},
	}
}

// TestConfigWithInvalidValues returns a config with invalid values for testing validation
func TestConfigWithInvalidValues() *config.Config {
	return &config.Config{
		General: config.GeneralConfig{
			Locale: "xx", // Invalid
		},
		Transcription: config.TranscriptionConfig{
			Provider: "", // Invalid
			Model:    "", // Invalid
		},
		Segmenter: config.SegmenterConfig{
			MaxChunkDuration: 0, // Invalid
			SampleRate:       0, // Invalid
		},
		Diarization: config.DiarizationConfig{
			MinGap: 0, // Invalid
		},
		Export: config.ExportConfig{
			Formats: []string{}, // Invalid (empty)
		},
	}
}

// CreateTempConfigFile creates a temporary config file for testing
func CreateTempConfigFile(t *testing.T, configContent string) string {
	t.Helper()

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.toml")

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// MockAdapter implements transcriber.Adapter with injectable behavior.
type MockAdapter struct {
	TranscribeFunc func(ctx context.Context, wavPath string) (transcriber.SegmentTranscript, error)
	CloseFunc      func() error
}

func (m *MockAdapter) Transcribe(ctx context.Context, wavPath string) (transcriber.SegmentTranscript, error) {
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, wavPath)
	}
	return transcriber.SegmentTranscript{Text: "mock transcript"}, nil
}

func (m *MockAdapter) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// FakeProber returns a fixed asset without shelling out to ffprobe.
type FakeProber struct {
	Asset audio.Asset
	Err   error
}

func (f *FakeProber) Probe(ctx context.Context, path string) (audio.Asset, error) {
	if f.Err != nil {
		return audio.Asset{}, f.Err
	}
	a := f.Asset
	if a.Path == "" {
		a.Path = path
	}
	return a, nil
}

// FakeSegmenter plans spans like the real segmenter but fabricates segment
// paths instead of running ffmpeg.
type FakeSegmenter struct {
	Err error
}

func (f *FakeSegmenter) Segment(ctx context.Context, asset audio.Asset, maxChunk time.Duration, dir string) ([]audio.Segment, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	spans, err := audio.Plan(asset.Duration, maxChunk)
	if err != nil {
		return nil, err
	}
	segments := make([]audio.Segment, len(spans))
	for i, span := range spans {
		segments[i] = audio.Segment{
			Index:    i,
			Path:     filepath.Join(dir, "segment.wav"),
			Start:    span.Start,
			Duration: span.Duration,
		}
	}
	return segments, nil
}
