package export

import (
	"fmt"
	"strings"
	"time"

	"audioscribe/internal/stitch"
)

// renderMarkdown writes a metadata header followed by timestamped lines.
func renderMarkdown(meta Metadata, t stitch.Transcript) []byte {
	var b strings.Builder

	title := meta.Title
	if title == "" {
		title = "Audio Transcription"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if meta.Source != "" {
		fmt.Fprintf(&b, "- Source: `%s`\n", meta.Source)
	}
	if meta.Provider != "" {
		fmt.Fprintf(&b, "- Provider: `%s`\n", meta.Provider)
	}
	if meta.Model != "" {
		fmt.Fprintf(&b, "- Model: `%s`\n", meta.Model)
	}
	if meta.Language != "" {
		fmt.Fprintf(&b, "- Language: %s\n", meta.Language)
	}
	if !meta.Generated.IsZero() {
		fmt.Fprintf(&b, "- Generated: %s\n", meta.Generated.Format("2006-01-02 15:04"))
	}
	if meta.Duration > 0 {
		fmt.Fprintf(&b, "- Duration: %s\n", meta.Duration.Truncate(time.Second))
	}
	b.WriteString("\n---\n\n")

	for _, span := range t.Spans {
		text := strings.TrimSpace(span.Text)
		if span.Gap {
			text = "*[inaudible: transcription failed]*"
		}
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "[%s-%s] ", clock(span.Start), clock(span.End))
		if span.Speaker != "" && !span.Gap {
			fmt.Fprintf(&b, "%s: ", span.Speaker)
		}
		fmt.Fprintf(&b, "%s\n\n", text)
	}

	return []byte(b.String())
}
