package job

import (
	"errors"
	"fmt"
	"strings"
)

// SegmentError carries the failure detail for one segment.
type SegmentError struct {
	Index int
	Err   error
}

func (e SegmentError) Error() string {
	return fmt.Sprintf("segment %d: %v", e.Index, e.Err)
}

func (e SegmentError) Unwrap() error {
	return e.Err
}

// AllSegmentsFailedError marks a job where every segment transcription
// failed. Partial failures never produce this error; they degrade to a
// transcript with gap markers instead.
type AllSegmentsFailedError struct {
	Errors []SegmentError
}

func (e *AllSegmentsFailedError) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return "all segments failed"
	}
	details := make([]string, len(e.Errors))
	for i, se := range e.Errors {
		details[i] = se.Error()
	}
	return fmt.Sprintf("all %d segments failed: %s", len(e.Errors), strings.Join(details, "; "))
}

func IsAllSegmentsFailed(err error) bool {
	var asf *AllSegmentsFailedError
	return errors.As(err, &asf)
}
