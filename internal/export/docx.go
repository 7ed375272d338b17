package export

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"

	"audioscribe/internal/stitch"
)

// renderDOCX lays the transcript out as a Word document, one paragraph per
// speaker turn.
func renderDOCX(meta Metadata, t stitch.Transcript) ([]byte, error) {
	title := meta.Title
	if title == "" {
		title = "Audio Transcription"
	}

	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText(title).Size("32")
	if !meta.Generated.IsZero() {
		doc.AddParagraph().AddText(fmt.Sprintf("Generated on %s", meta.Generated.Format("2006-01-02 15:04")))
	}
	doc.AddParagraph()

	for _, para := range paragraphs(t) {
		doc.AddParagraph().AddText(para)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to build DOCX: %w", err)
	}
	return buf.Bytes(), nil
}
