package export

import (
	"os"
	"strings"
	"testing"
	"time"

	"audioscribe/internal/stitch"
)

func sampleTranscript() stitch.Transcript {
	return stitch.Transcript{
		Duration: 15 * time.Minute,
		Spans: []stitch.Span{
			{Start: 0, End: 4 * time.Second, Text: "Welcome everyone."},
			{Start: 5 * time.Minute, End: 10 * time.Minute, Gap: true},
			{Start: 10 * time.Minute, End: 10*time.Minute + 3*time.Second, Text: "And we are back."},
		},
	}
}

func sampleMetadata() Metadata {
	return Metadata{
		Title:     "Board Meeting",
		Source:    "meeting.mp3",
		Provider:  "whisper-cpp",
		Model:     "base",
		Generated: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Duration:  15 * time.Minute,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"txt", FormatText, false},
		{"text", FormatText, false},
		{"TXT", FormatText, false},
		{" srt ", FormatSRT, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"pdf", FormatPDF, false},
		{"docx", FormatDOCX, false},
		{"odt", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	got := FileName(FormatPDF, at)
	want := "transcription_20260314_150926.pdf"
	if got != want {
		t.Errorf("FileName = %s, want %s", got, want)
	}
}

func TestRenderText(t *testing.T) {
	data, err := Render(FormatText, sampleMetadata(), sampleTranscript())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "Welcome everyone.") {
		t.Error("missing first paragraph")
	}
	if !strings.Contains(text, "[inaudible 05:00 - 10:00: transcription failed]") {
		t.Errorf("missing gap marker in %q", text)
	}
	if !strings.Contains(text, "And we are back.") {
		t.Error("missing text after gap")
	}
}

func TestRenderTextMergesSpeakerLines(t *testing.T) {
	tr := stitch.Transcript{Spans: []stitch.Span{
		{End: time.Second, Text: "hello", Speaker: "Gabriela"},
		{Start: time.Second, End: 2 * time.Second, Text: "there", Speaker: "Gabriela"},
		{Start: 2 * time.Second, End: 3 * time.Second, Text: "hi", Speaker: "Marco"},
	}}

	data, err := Render(FormatText, Metadata{}, tr)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "Gabriela: hello there") {
		t.Errorf("speaker lines not merged: %q", text)
	}
	if !strings.Contains(text, "Marco: hi") {
		t.Errorf("missing second speaker line: %q", text)
	}
}

func TestRenderSRT(t *testing.T) {
	data, err := Render(FormatSRT, sampleMetadata(), sampleTranscript())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	srt := string(data)

	if !strings.HasPrefix(srt, "1\n00:00:00,000 --> 00:00:04,000\n") {
		t.Errorf("unexpected first cue: %q", srt[:50])
	}
	if !strings.Contains(srt, "2\n00:05:00,000 --> 00:10:00,000\n[inaudible]") {
		t.Errorf("gap cue missing: %q", srt)
	}
	if !strings.Contains(srt, "And we are back.") {
		t.Error("missing third cue text")
	}
}

func TestSRTClock(t *testing.T) {
	d := time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond
	if got := srtClock(d); got != "01:02:03,450" {
		t.Errorf("srtClock = %s", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	data, err := Render(FormatMarkdown, sampleMetadata(), sampleTranscript())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	md := string(data)

	if !strings.HasPrefix(md, "# Board Meeting\n") {
		t.Errorf("missing title header: %q", md[:40])
	}
	if !strings.Contains(md, "- Source: `meeting.mp3`") {
		t.Error("missing source line")
	}
	if !strings.Contains(md, "- Model: `base`") {
		t.Error("missing model line")
	}
	if !strings.Contains(md, "[00:00-00:04] Welcome everyone.") {
		t.Errorf("missing timestamped line: %q", md)
	}
	if !strings.Contains(md, "*[inaudible: transcription failed]*") {
		t.Error("missing gap marker")
	}
}

func TestRenderPDFAndDOCXProduceDocuments(t *testing.T) {
	for _, format := range []Format{FormatPDF, FormatDOCX} {
		data, err := Render(format, sampleMetadata(), sampleTranscript())
		if err != nil {
			t.Fatalf("Render(%s) failed: %v", format, err)
		}
		if len(data) == 0 {
			t.Errorf("Render(%s) produced no output", format)
		}
	}

	// PDF magic number
	pdf, _ := Render(FormatPDF, sampleMetadata(), sampleTranscript())
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Error("PDF output missing %PDF header")
	}

	// DOCX is a zip container
	docx, _ := Render(FormatDOCX, sampleMetadata(), sampleTranscript())
	if len(docx) < 2 || docx[0] != 'P' || docx[1] != 'K' {
		t.Error("DOCX output missing zip header")
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(dir, FormatText, sampleMetadata(), sampleTranscript())
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("output path %s not under %s", path, dir)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("output file is empty")
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{42 * time.Second, "00:42"},
		{5 * time.Minute, "05:00"},
		{time.Hour + time.Minute + time.Second, "01:01:01"},
	}
	for _, tt := range tests {
		if got := clock(tt.d); got != tt.want {
			t.Errorf("clock(%v) = %s, want %s", tt.d, got, tt.want)
		}
	}
}
