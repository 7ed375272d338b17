package job

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Status is a job lifecycle state.
type Status string

const (
	Pending          Status = "pending"
	Segmenting       Status = "segmenting"
	Transcribing     Status = "transcribing"
	Stitching        Status = "stitching"
	Complete         Status = "complete"
	CompleteWithGaps Status = "complete_with_gaps"
	Failed           Status = "failed"
)

// Terminal reports whether the status ends the job.
func (s Status) Terminal() bool {
	switch s {
	case Complete, CompleteWithGaps, Failed:
		return true
	default:
		return false
	}
}

// Job is a snapshot of one transcription job.
type Job struct {
	ID     string
	Status Status
}

// Tracker validates and applies state transitions for a single job.
type Tracker struct {
	mu  sync.RWMutex
	job Job
}

func NewTracker() *Tracker {
	return &Tracker{
		job: Job{
			ID:     uuid.NewString(),
			Status: Pending,
		},
	}
}

// Transition moves the job to the given status, rejecting edges the state
// machine does not allow.
func (t *Tracker) Transition(status Status) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if status == t.job.Status {
		return nil
	}
	if !validTransition(t.job.Status, status) {
		return fmt.Errorf("invalid transition: %s -> %s", t.job.Status, status)
	}
	t.job.Status = status
	return nil
}

// Snapshot returns a copy of the current job state.
func (t *Tracker) Snapshot() Job {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.job
}

// validTransition enforces the allowed job state machine edges. Transcribing
// fans out internally; partial segment failures stay within Transcribing and
// surface later as the CompleteWithGaps terminal state.
func validTransition(from, to Status) bool {
	switch from {
	case Pending:
		return to == Segmenting || to == Failed
	case Segmenting:
		return to == Transcribing || to == Failed
	case Transcribing:
		return to == Stitching || to == Failed
	case Stitching:
		return to == Complete || to == CompleteWithGaps || to == Failed
	default:
		return false
	}
}
