package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"audioscribe/internal/stitch"
)

// renderPDF lays the transcript out as a titled A4 document, one paragraph
// per speaker turn.
func renderPDF(meta Metadata, t stitch.Transcript) ([]byte, error) {
	title := meta.Title
	if title == "" {
		title = "Audio Transcription"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, title, "", "L", false)

	if !meta.Generated.IsZero() {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("Generated on %s", meta.Generated.Format("2006-01-02 15:04")), "", "L", false)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	for _, para := range paragraphs(t) {
		pdf.MultiCell(0, 6, para, "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build PDF: %w", err)
	}
	return buf.Bytes(), nil
}
