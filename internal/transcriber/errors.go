package transcriber

import (
	"errors"
	"fmt"
)

// ModelError reports a failed model invocation for a single segment.
// It is not fatal to the job: the stitcher marks a gap for the segment
// and the remaining segments proceed.
type ModelError struct {
	Provider string
	Err      error
}

func (e *ModelError) Error() string {
	if e == nil || e.Err == nil {
		return "model error"
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ModelError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewModelError(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &ModelError{Provider: provider, Err: err}
}

func IsModelError(err error) bool {
	var me *ModelError
	return errors.As(err, &me)
}
