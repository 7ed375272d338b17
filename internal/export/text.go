package export

import (
	"strings"

	"audioscribe/internal/stitch"
)

// renderText writes the transcript as plain paragraphs separated by blank
// lines, the same shape the clipboard/preview text takes.
func renderText(meta Metadata, t stitch.Transcript) []byte {
	var b strings.Builder
	for i, para := range paragraphs(t) {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(para)
	}
	b.WriteString("\n")
	return []byte(b.String())
}
