package audio

import (
	"errors"
	"fmt"
)

// DecodeError reports an asset that could not be read or probed.
// It is fatal for the whole job.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "decode error"
	}
	if e.Err == nil {
		return fmt.Sprintf("cannot decode %s", e.Path)
	}
	return fmt.Sprintf("cannot decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewDecodeError(path string, err error) error {
	return &DecodeError{Path: path, Err: err}
}

func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
