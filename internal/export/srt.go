package export

import (
	"fmt"
	"strings"
	"time"

	"audioscribe/internal/stitch"
)

// renderSRT writes the transcript as SubRip subtitles, one cue per span.
// Gap spans become explicit [inaudible] cues so the timeline stays honest.
func renderSRT(t stitch.Transcript) []byte {
	var b strings.Builder
	n := 0
	for _, span := range t.Spans {
		text := strings.TrimSpace(span.Text)
		if span.Gap {
			text = "[inaudible]"
		}
		if text == "" {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d\n%s --> %s\n", n, srtClock(span.Start), srtClock(span.End))
		if span.Speaker != "" && !span.Gap {
			fmt.Fprintf(&b, "%s: ", span.Speaker)
		}
		fmt.Fprintf(&b, "%s\n\n", text)
	}
	return []byte(b.String())
}

// srtClock renders HH:MM:SS,mmm per the SubRip spec.
func srtClock(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	ms := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
