package textgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is the umbrella sentinel for malformed input. Every *FormatError
	// matches it under errors.Is.
	ErrFormat = errors.New("textgrid: malformed input")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("textgrid: all rows must have the same length")
)

// FormatError reports malformed input at a specific 0-based row.
type FormatError struct {
	Row int
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrFormat so callers can match any format failure
// without knowing the concrete cause.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// NewFormatError creates a new FormatError.
func NewFormatError(row int, err error) *FormatError {
	return &FormatError{Row: row, Err: err}
}
