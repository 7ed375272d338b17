package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"audioscribe/internal/diarize"
	"audioscribe/internal/stitch"
)

// Format is an output document format.
type Format string

const (
	FormatText     Format = "txt"
	FormatSRT      Format = "srt"
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

// Formats lists every supported format in render order.
func Formats() []Format {
	return []Format{FormatText, FormatSRT, FormatMarkdown, FormatPDF, FormatDOCX}
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "txt", "text":
		return FormatText, nil
	case "srt":
		return FormatSRT, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (must be txt, srt, md, pdf, or docx)", s)
	}
}

// Metadata describes the job that produced a transcript.
type Metadata struct {
	Title     string
	Source    string
	Provider  string
	Model     string
	Language  string
	Generated time.Time
	Duration  time.Duration
}

// Render produces the document bytes for one format.
func Render(f Format, meta Metadata, t stitch.Transcript) ([]byte, error) {
	switch f {
	case FormatText:
		return renderText(meta, t), nil
	case FormatSRT:
		return renderSRT(t), nil
	case FormatMarkdown:
		return renderMarkdown(meta, t), nil
	case FormatPDF:
		return renderPDF(meta, t)
	case FormatDOCX:
		return renderDOCX(meta, t)
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
}

// FileName builds the output file name for a format, matching the
// transcription_<timestamp> convention of the download buttons this tool
// replaces.
func FileName(f Format, at time.Time) string {
	return fmt.Sprintf("transcription_%s.%s", at.Format("20060102_150405"), f)
}

// Write renders the transcript and writes it under dir, returning the path.
func Write(dir string, f Format, meta Metadata, t stitch.Transcript) (string, error) {
	data, err := Render(f, meta, t)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(f, meta.Generated))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// paragraphs flattens a transcript into printable paragraphs: one merged
// line per speaker turn when diarized, the plain text otherwise, with an
// explicit marker for every gap.
func paragraphs(t stitch.Transcript) []string {
	diarized := false
	for _, span := range t.Spans {
		if span.Speaker != "" {
			diarized = true
			break
		}
	}

	var paras []string
	if diarized {
		for _, line := range diarize.MergeLines(&t) {
			paras = append(paras, fmt.Sprintf("%s: %s", line.Speaker, line.Text))
		}
		for _, span := range t.Spans {
			if span.Gap {
				paras = append(paras, gapMarker(span))
			}
		}
		return paras
	}

	var b strings.Builder
	for _, span := range t.Spans {
		if span.Gap {
			if b.Len() > 0 {
				paras = append(paras, strings.TrimSpace(b.String()))
				b.Reset()
			}
			paras = append(paras, gapMarker(span))
			continue
		}
		b.WriteString(strings.TrimSpace(span.Text))
		b.WriteString(" ")
	}
	if strings.TrimSpace(b.String()) != "" {
		paras = append(paras, strings.TrimSpace(b.String()))
	}
	return paras
}

func gapMarker(span stitch.Span) string {
	return fmt.Sprintf("[inaudible %s - %s: transcription failed]",
		clock(span.Start), clock(span.End))
}

// clock renders a duration as MM:SS, or HH:MM:SS past the first hour.
func clock(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
