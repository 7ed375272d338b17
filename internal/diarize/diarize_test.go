package diarize

import (
	"context"
	"testing"
	"time"

	"audioscribe/internal/stitch"
)

func spanAt(start, end time.Duration, text string) stitch.Span {
	return stitch.Span{Start: start, End: end, Text: text}
}

func TestSilenceGapSingleSpeaker(t *testing.T) {
	tr := &stitch.Transcript{Spans: []stitch.Span{
		spanAt(0, 2*time.Second, "hello"),
		spanAt(2*time.Second+500*time.Millisecond, 5*time.Second, "still me"),
	}}

	d := NewSilenceGap(1500 * time.Millisecond)
	turns, err := d.Diarize(context.Background(), tr)
	if err != nil {
		t.Fatalf("Diarize failed: %v", err)
	}

	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
	if turns[0].Speaker != "SPEAKER_00" {
		t.Errorf("speaker = %s", turns[0].Speaker)
	}
	if turns[0].Start != 0 || turns[0].End != 5*time.Second {
		t.Errorf("turn covers [%v, %v)", turns[0].Start, turns[0].End)
	}
}

func TestSilenceGapAlternatesOnLongPause(t *testing.T) {
	tr := &stitch.Transcript{Spans: []stitch.Span{
		spanAt(0, 2*time.Second, "question"),
		spanAt(5*time.Second, 8*time.Second, "answer"),
		spanAt(12*time.Second, 14*time.Second, "follow-up"),
	}}

	d := NewSilenceGap(1500 * time.Millisecond)
	turns, err := d.Diarize(context.Background(), tr)
	if err != nil {
		t.Fatalf("Diarize failed: %v", err)
	}

	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	want := []string{"SPEAKER_00", "SPEAKER_01", "SPEAKER_00"}
	for i, turn := range turns {
		if turn.Speaker != want[i] {
			t.Errorf("turn %d speaker = %s, want %s", i, turn.Speaker, want[i])
		}
	}
}

func TestSilenceGapEmptyTranscript(t *testing.T) {
	d := NewSilenceGap(0)
	turns, err := d.Diarize(context.Background(), &stitch.Transcript{})
	if err != nil {
		t.Fatalf("Diarize failed: %v", err)
	}
	if turns != nil {
		t.Errorf("expected no turns, got %v", turns)
	}
}

func TestNewSilenceGapDefaultsMinGap(t *testing.T) {
	d := NewSilenceGap(0)
	if d.MinGap != 1500*time.Millisecond {
		t.Errorf("MinGap = %v", d.MinGap)
	}
}

func TestAssignSpeakersByMidpoint(t *testing.T) {
	tr := &stitch.Transcript{Spans: []stitch.Span{
		spanAt(0, 4*time.Second, "from the first speaker"),
		spanAt(10*time.Second, 14*time.Second, "from the second speaker"),
		spanAt(30*time.Second, 34*time.Second, "covered by no turn"),
	}}
	turns := []Turn{
		{Start: 0, End: 5 * time.Second, Speaker: "SPEAKER_00"},
		{Start: 9 * time.Second, End: 15 * time.Second, Speaker: "SPEAKER_01"},
	}

	AssignSpeakers(tr, turns)

	if tr.Spans[0].Speaker != "SPEAKER_00" {
		t.Errorf("span 0 speaker = %s", tr.Spans[0].Speaker)
	}
	if tr.Spans[1].Speaker != "SPEAKER_01" {
		t.Errorf("span 1 speaker = %s", tr.Spans[1].Speaker)
	}
	if tr.Spans[2].Speaker != UnknownSpeaker {
		t.Errorf("span 2 speaker = %s, want %s", tr.Spans[2].Speaker, UnknownSpeaker)
	}
}

func TestAssignSpeakersSkipsGaps(t *testing.T) {
	tr := &stitch.Transcript{Spans: []stitch.Span{
		{Start: 0, End: 10 * time.Second, Gap: true},
	}}
	turns := []Turn{{Start: 0, End: 10 * time.Second, Speaker: "SPEAKER_00"}}

	AssignSpeakers(tr, turns)

	if tr.Spans[0].Speaker != "" {
		t.Errorf("gap span got speaker %s", tr.Spans[0].Speaker)
	}
}

func TestRenameSpeakers(t *testing.T) {
	tr := &stitch.Transcript{Spans: []stitch.Span{
		{Speaker: "SPEAKER_00", Text: "hi"},
		{Speaker: "SPEAKER_01", Text: "hello"},
		{Speaker: "SPEAKER_00", Text: "bye"},
	}}

	RenameSpeakers(tr, map[string]string{"SPEAKER_00": "Gabriela"})

	if tr.Spans[0].Speaker != "Gabriela" || tr.Spans[2].Speaker != "Gabriela" {
		t.Error("SPEAKER_00 spans not renamed")
	}
	if tr.Spans[1].Speaker != "SPEAKER_01" {
		t.Errorf("SPEAKER_01 should be untouched, got %s", tr.Spans[1].Speaker)
	}
}

func TestSpeakersFirstAppearanceOrder(t *testing.T) {
	tr := &stitch.Transcript{Spans: []stitch.Span{
		{Speaker: "SPEAKER_01"},
		{Speaker: "SPEAKER_00"},
		{Speaker: "SPEAKER_01"},
		{Gap: true},
	}}

	got := Speakers(tr)
	want := []string{"SPEAKER_01", "SPEAKER_00"}
	if len(got) != len(want) {
		t.Fatalf("Speakers = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Speakers[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMergeLines(t *testing.T) {
	tr := &stitch.Transcript{Spans: []stitch.Span{
		{Speaker: "SPEAKER_00", Text: "hello"},
		{Speaker: "SPEAKER_00", Text: "there"},
		{Speaker: "SPEAKER_01", Text: "hi"},
	}}

	lines := MergeLines(tr)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Speaker != "SPEAKER_00" || lines[0].Text != "hello there" {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].Speaker != "SPEAKER_01" || lines[1].Text != "hi" {
		t.Errorf("line 1 = %+v", lines[1])
	}
}

func TestMergeLinesGapBreaksLine(t *testing.T) {
	tr := &stitch.Transcript{Spans: []stitch.Span{
		{Speaker: "SPEAKER_00", Text: "before"},
		{Gap: true},
		{Speaker: "SPEAKER_00", Text: "after"},
	}}

	lines := MergeLines(tr)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "before" || lines[1].Text != "after" {
		t.Errorf("lines = %+v", lines)
	}
}
