package transcriber

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseWhisperOutput(t *testing.T) {
	output := `whisper_init_from_file_with_params_no_state: loading model
[00:00:00.000 --> 00:00:04.280]   And so my fellow Americans,
[00:00:04.280 --> 00:00:08.520]   ask not what your country can do for you.

whisper_print_timings: total time = 1234 ms
`

	result := parseWhisperOutput(output)

	if len(result.Spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(result.Spans))
	}

	first := result.Spans[0]
	if first.Start != 0 {
		t.Errorf("first span start = %v", first.Start)
	}
	if first.End != 4*time.Second+280*time.Millisecond {
		t.Errorf("first span end = %v", first.End)
	}
	if first.Text != "And so my fellow Americans," {
		t.Errorf("first span text = %q", first.Text)
	}

	second := result.Spans[1]
	if second.Start != 4*time.Second+280*time.Millisecond {
		t.Errorf("second span start = %v", second.Start)
	}

	wantText := "And so my fellow Americans, ask not what your country can do for you."
	if result.Text != wantText {
		t.Errorf("text = %q, want %q", result.Text, wantText)
	}
}

func TestParseWhisperOutputIgnoresNoise(t *testing.T) {
	output := `system_info: n_threads = 4
main: processing audio.wav
[00:00:01.000 --> 00:00:02.000]
[not a timestamp] random line
`
	result := parseWhisperOutput(output)
	if len(result.Spans) != 0 {
		t.Errorf("expected no spans, got %d", len(result.Spans))
	}
	if result.Text != "" {
		t.Errorf("expected empty text, got %q", result.Text)
	}
}

func TestParseWhisperOutputPastOneHour(t *testing.T) {
	output := "[01:02:03.450 --> 01:02:05.000]   still talking"
	result := parseWhisperOutput(output)
	if len(result.Spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(result.Spans))
	}
	want := time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond
	if result.Spans[0].Start != want {
		t.Errorf("start = %v, want %v", result.Spans[0].Start, want)
	}
}

func TestParseClock(t *testing.T) {
	got := parseClock("01", "30", "45", "500")
	want := time.Hour + 30*time.Minute + 45*time.Second + 500*time.Millisecond
	if got != want {
		t.Errorf("parseClock = %v, want %v", got, want)
	}
}

func TestNewAdapterOpenAIRequiresKey(t *testing.T) {
	_, err := NewAdapter(Config{Provider: "openai"})
	if err == nil {
		t.Fatal("expected error without API key")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewAdapterOpenAI(t *testing.T) {
	a, err := NewAdapter(Config{Provider: "openai", APIKey: "sk-test", Model: "whisper-1"})
	if err != nil {
		t.Fatalf("NewAdapter failed: %v", err)
	}
	if _, ok := a.(*OpenAIAdapter); !ok {
		t.Errorf("expected *OpenAIAdapter, got %T", a)
	}
	if err := a.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestNewAdapterUnknownProvider(t *testing.T) {
	_, err := NewAdapter(Config{Provider: "deepgram"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewAdapterWhisperCppMissingModel(t *testing.T) {
	_, err := NewAdapter(Config{Provider: "whisper-cpp", Model: "no-such-model"})
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if !strings.Contains(err.Error(), "model download") {
		t.Errorf("error should hint at the download command: %v", err)
	}
}

func TestModelError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewModelError("openai", cause)

	if !IsModelError(err) {
		t.Error("IsModelError should match")
	}
	if !errors.Is(err, cause) {
		t.Error("should unwrap to cause")
	}
	if IsModelError(errors.New("plain")) {
		t.Error("IsModelError matched a plain error")
	}
}
