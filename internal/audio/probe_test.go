package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const probeJSON = `{
	"streams": [
		{"codec_type": "video", "channels": 0},
		{"codec_type": "audio", "sample_rate": "44100", "channels": 2}
	],
	"format": {
		"format_name": "mp3",
		"duration": "1800.500000",
		"size": "28800000"
	}
}`

func TestParseProbeOutput(t *testing.T) {
	asset, err := parseProbeOutput([]byte(probeJSON), "/audio/talk.mp3")
	if err != nil {
		t.Fatalf("parseProbeOutput failed: %v", err)
	}

	if asset.Path != "/audio/talk.mp3" {
		t.Errorf("path = %s", asset.Path)
	}
	if asset.Duration != 1800*time.Second+500*time.Millisecond {
		t.Errorf("duration = %v", asset.Duration)
	}
	if asset.FormatName != "mp3" {
		t.Errorf("format = %s", asset.FormatName)
	}
	if asset.SampleRate != 44100 {
		t.Errorf("sample rate = %d", asset.SampleRate)
	}
	if asset.Channels != 2 {
		t.Errorf("channels = %d", asset.Channels)
	}
	if asset.Size != 28800000 {
		t.Errorf("size = %d", asset.Size)
	}
}

func TestParseProbeOutputErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "ffprobe: command not found"},
		{"missing duration", `{"streams": [{"codec_type": "audio", "channels": 1}], "format": {"format_name": "wav"}}`},
		{"zero duration", `{"streams": [{"codec_type": "audio", "channels": 1}], "format": {"duration": "0.000000"}}`},
		{"no audio stream", `{"streams": [{"codec_type": "video"}], "format": {"duration": "10.0"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseProbeOutput([]byte(tt.data), "/audio/bad.mp3")
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsDecodeError(err) {
				t.Errorf("expected DecodeError, got %T: %v", err, err)
			}
		})
	}
}

func TestProbeMissingFile(t *testing.T) {
	p := NewProberForTests("ffprobe", &fakeRunner{})
	_, err := p.Probe(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !IsDecodeError(err) {
		t.Errorf("expected DecodeError, got %T: %v", err, err)
	}
}

func TestProbeCommandFailure(t *testing.T) {
	path := writeTempAudio(t)

	p := NewProberForTests("ffprobe", &fakeRunner{err: fmt.Errorf("exit status 1")})
	_, err := p.Probe(context.Background(), path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsDecodeError(err) {
		t.Errorf("expected DecodeError, got %T: %v", err, err)
	}
}

func TestProbeSuccess(t *testing.T) {
	path := writeTempAudio(t)

	runner := &fakeRunner{result: commandResult{Stdout: probeJSON}}
	p := NewProberForTests("ffprobe", runner)

	asset, err := p.Probe(context.Background(), path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if asset.Path != path {
		t.Errorf("path = %s, want %s", asset.Path, path)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected 1 ffprobe call, got %d", len(runner.calls))
	}
}

func writeTempAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.mp3")
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}
