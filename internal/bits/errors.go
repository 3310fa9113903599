package bits

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHex   = errors.New("bits: invalid hex input")
	ErrTruncated    = errors.New("bits: truncated bit stream")
	ErrInvalidRead  = errors.New("bits: invalid read width")
	ErrInvalidWrite = errors.New("bits: value does not fit write width")
)

// InvalidHexError reports the first character that is not a hex digit.
type InvalidHexError struct {
	Offset int
	Char   rune
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("bits: invalid hex digit %q at offset %d", e.Char, e.Offset)
}

func (e *InvalidHexError) Unwrap() error {
	return ErrInvalidHex
}
