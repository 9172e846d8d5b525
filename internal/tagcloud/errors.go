package tagcloud

import (
	"errors"
	"fmt"
)

var (
	// ErrRead marks a failure of the input source during a scan.
	ErrRead = errors.New("read failure")
	// ErrInvalidN marks a requested term count outside [0, distinct words].
	ErrInvalidN = errors.New("invalid term count")
	// ErrEmptyInput marks input that contained no words at all.
	ErrEmptyInput = errors.New("empty input")
)

// ReadError reports an input failure. No partial cloud accompanies it.
type ReadError struct {
	Line int // Number of lines read successfully before the failure.
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read failure after line %d: %v", e.Line, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrRead, e.Err}
}

// InvalidNError reports a term count the caller must correct.
type InvalidNError struct {
	N        int
	Distinct int
}

func (e *InvalidNError) Error() string {
	return fmt.Sprintf("invalid term count %d: must be between 0 and %d", e.N, e.Distinct)
}

func (e *InvalidNError) Unwrap() []error {
	if e.Distinct == 0 {
		return []error{ErrInvalidN, ErrEmptyInput}
	}
	return []error{ErrInvalidN}
}
