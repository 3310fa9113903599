// Package bits turns hex transmissions into MSB-first bit buffers and
// provides a cursor for reading fixed-width fields from them.
package bits

import "strings"

// Buffer is an immutable sequence of bits packed MSB first into bytes.
type Buffer struct {
	buf    []byte
	bitLen int
}

// Decode converts uppercase hex digits into a buffer of 4*len(hex) bits.
// Odd digit counts are fine: each digit is a self-contained nibble.
func Decode(hex string) (Buffer, error) {
	if hex == "" {
		return Buffer{}, ErrInvalidHex
	}
	out := Buffer{
		buf:    make([]byte, (len(hex)+1)/2),
		bitLen: 4 * len(hex),
	}
	for i := 0; i < len(hex); i++ {
		n, ok := nibble(hex[i])
		if !ok {
			return Buffer{}, &InvalidHexError{Offset: i, Char: rune(hex[i])}
		}
		if i%2 == 0 {
			out.buf[i/2] = n << 4
		} else {
			out.buf[i/2] |= n
		}
	}
	return out, nil
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Len returns the number of bits in the buffer.
func (b Buffer) Len() int {
	return b.bitLen
}

// Bit returns bit i, counting from the most significant bit of the first
// hex digit. It panics if i is out of range.
func (b Buffer) Bit(i int) bool {
	if i < 0 || i >= b.bitLen {
		panic("bits: index out of range")
	}
	return b.buf[i/8]&(1<<uint(7-i%8)) != 0
}

// String renders the buffer as '0'/'1' characters.
func (b Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.bitLen)
	for i := 0; i < b.bitLen; i++ {
		if b.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
