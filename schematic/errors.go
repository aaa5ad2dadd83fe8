package schematic

import "errors"

var (
	// ErrGridNil is returned when a nil *textgrid.Grid is passed in.
	ErrGridNil = errors.New("schematic: grid is nil")
	// ErrBadNumber indicates token text that does not parse as an unsigned
	// 64-bit integer. It is always wrapped in a *textgrid.FormatError.
	ErrBadNumber = errors.New("schematic: malformed number")
)
