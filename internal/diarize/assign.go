package diarize

import (
	"strings"

	"audioscribe/internal/stitch"
)

// UnknownSpeaker labels spans whose midpoint falls inside no turn.
const UnknownSpeaker = "Unknown"

// AssignSpeakers labels each transcript span with the speaker whose turn
// contains the span's temporal midpoint. Gap spans are left unlabelled.
func AssignSpeakers(t *stitch.Transcript, turns []Turn) {
	if t == nil || len(turns) == 0 {
		return
	}

	for i := range t.Spans {
		span := &t.Spans[i]
		if span.Gap {
			continue
		}
		midpoint := span.Start + (span.End-span.Start)/2

		span.Speaker = UnknownSpeaker
		for _, turn := range turns {
			if turn.Start <= midpoint && midpoint <= turn.End {
				span.Speaker = turn.Speaker
				break
			}
		}
	}
}

// RenameSpeakers replaces speaker labels throughout the transcript, e.g.
// SPEAKER_00 -> "Gabriela". Labels missing from names are left unchanged.
func RenameSpeakers(t *stitch.Transcript, names map[string]string) {
	if t == nil || len(names) == 0 {
		return
	}
	for i := range t.Spans {
		if name, ok := names[t.Spans[i].Speaker]; ok && name != "" {
			t.Spans[i].Speaker = name
		}
	}
}

// Speakers returns the distinct speaker labels in first-appearance order.
func Speakers(t *stitch.Transcript) []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool)
	var labels []string
	for _, span := range t.Spans {
		if span.Speaker == "" || seen[span.Speaker] {
			continue
		}
		seen[span.Speaker] = true
		labels = append(labels, span.Speaker)
	}
	return labels
}

// Line is one merged speaker turn of the final transcript.
type Line struct {
	Speaker string
	Text    string
}

// MergeLines folds consecutive same-speaker spans into speaker-labelled
// lines. Gap spans break the current line so a failed segment is never
// absorbed into surrounding speech.
func MergeLines(t *stitch.Transcript) []Line {
	if t == nil {
		return nil
	}

	var lines []Line
	var current *Line

	flush := func() {
		if current != nil && strings.TrimSpace(current.Text) != "" {
			current.Text = strings.TrimSpace(current.Text)
			lines = append(lines, *current)
		}
		current = nil
	}

	for _, span := range t.Spans {
		if span.Gap {
			flush()
			continue
		}
		if current == nil || current.Speaker != span.Speaker {
			flush()
			current = &Line{Speaker: span.Speaker}
		}
		current.Text += strings.TrimSpace(span.Text) + " "
	}
	flush()

	return lines
}
