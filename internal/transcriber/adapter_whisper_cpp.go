package transcriber

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// WhisperCppAdapter implements Adapter for local whisper.cpp transcription
// via the whisper-cli binary.
type WhisperCppAdapter struct {
	modelPath string
	language  string
	threads   int
}

// NewWhisperCppAdapter creates a new whisper-cpp adapter.
// modelPath: full path to the ggml model file
// lang: whisper-cpp language code (empty for auto-detect)
// threads: number of CPU threads (0 for whisper-cli default)
func NewWhisperCppAdapter(modelPath, lang string, threads int) *WhisperCppAdapter {
	return &WhisperCppAdapter{
		modelPath: modelPath,
		language:  lang,
		threads:   threads,
	}
}

func (a *WhisperCppAdapter) Transcribe(ctx context.Context, wavPath string) (SegmentTranscript, error) {
	if _, err := os.Stat(a.modelPath); os.IsNotExist(err) {
		return SegmentTranscript{}, NewModelError("whisper-cpp", fmt.Errorf("model file not found: %s", a.modelPath))
	}

	whisperPath, err := exec.LookPath("whisper-cli")
	if err != nil {
		return SegmentTranscript{}, NewModelError("whisper-cpp", fmt.Errorf("whisper-cli not found: install whisper.cpp first"))
	}

	lang := a.language
	if lang == "" {
		lang = "auto"
	}

	// timestamps stay on: stdout lines carry the span offsets we parse below
	args := []string{
		"-m", a.modelPath,
		"-l", lang,
		"-np", // no progress
		"-f", wavPath,
	}
	if a.threads > 0 {
		args = append(args, "-t", strconv.Itoa(a.threads))
	}

	cmd := exec.CommandContext(ctx, whisperPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	duration := time.Since(start)

	if err != nil {
		if ctx.Err() != nil {
			return SegmentTranscript{}, ctx.Err()
		}
		log.Printf("whisper-cpp: command failed after %v: %v\nstderr: %s", duration, err, stderr.String())
		return SegmentTranscript{}, NewModelError("whisper-cpp", fmt.Errorf("whisper-cli failed: %w", err))
	}

	result := parseWhisperOutput(stdout.String())
	log.Printf("whisper-cpp: transcribed %s in %v (%d spans)", wavPath, duration, len(result.Spans))
	return result, nil
}

// Close is a no-op: the model lives in the whisper-cli subprocess, which
// exits after each invocation.
func (a *WhisperCppAdapter) Close() error {
	return nil
}

// whisper-cli prints one line per decoded span:
//
//	[00:00:00.000 --> 00:00:04.280]   And so my fellow Americans...
var whisperLineRe = regexp.MustCompile(`^\[(\d{2}):(\d{2}):(\d{2})\.(\d{3}) --> (\d{2}):(\d{2}):(\d{2})\.(\d{3})\]\s*(.*)$`)

// parseWhisperOutput converts whisper-cli stdout into a SegmentTranscript.
// Lines without a timestamp prefix are ignored.
func parseWhisperOutput(output string) SegmentTranscript {
	var result SegmentTranscript
	var parts []string

	for _, line := range strings.Split(output, "\n") {
		m := whisperLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[9])
		if text == "" {
			continue
		}
		result.Spans = append(result.Spans, Span{
			Start: parseClock(m[1], m[2], m[3], m[4]),
			End:   parseClock(m[5], m[6], m[7], m[8]),
			Text:  text,
		})
		parts = append(parts, text)
	}

	result.Text = strings.Join(parts, " ")
	return result
}

func parseClock(h, m, s, ms string) time.Duration {
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	seconds, _ := strconv.Atoi(s)
	millis, _ := strconv.Atoi(ms)
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
}
