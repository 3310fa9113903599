package packet

import (
	"errors"
	"fmt"

	"github.com/danmuck/bitsctl/internal/bits"
)

var (
	ErrInvalidHex      = bits.ErrInvalidHex
	ErrTruncated       = bits.ErrTruncated
	ErrInvalidArity    = errors.New("packet: invalid operator arity")
	ErrLengthMismatch  = errors.New("packet: sub-packets overrun declared bit length")
	ErrLiteralOverflow = errors.New("packet: literal exceeds 64 bits")
	ErrTooDeep         = errors.New("packet: nesting exceeds depth limit")
	ErrUnknownKind     = errors.New("packet: unknown packet kind")
	ErrFieldOverflow   = errors.New("packet: value does not fit wire field")
)

// ParseError locates a decode failure at the bit offset where the failing
// packet starts.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("packet at bit %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ArityError indicates an operator with the wrong number of operands.
type ArityError struct {
	Kind Kind
	Got  int
}

func (e *ArityError) Error() string {
	want := "at least 1"
	if e.Kind.IsComparison() {
		want = "exactly 2"
	}
	return fmt.Sprintf("packet: %s operator has %d operands, want %s", e.Kind, e.Got, want)
}

func (e *ArityError) Unwrap() error {
	return ErrInvalidArity
}

func checkArity(kind Kind, n int) error {
	if kind.IsComparison() {
		if n != 2 {
			return &ArityError{Kind: kind, Got: n}
		}
		return nil
	}
	if n < 1 {
		return &ArityError{Kind: kind, Got: n}
	}
	return nil
}
