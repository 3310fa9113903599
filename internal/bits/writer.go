package bits

import "strings"

const hexDigits = "0123456789ABCDEF"

// Writer accumulates bits MSB first.
type Writer struct {
	buf    []byte
	bitLen int
}

// Len returns the number of bits written.
func (w *Writer) Len() int {
	return w.bitLen
}

func (w *Writer) writeBit(bit bool) {
	if w.bitLen%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if bit {
		w.buf[len(w.buf)-1] |= 1 << uint(7-w.bitLen%8)
	}
	w.bitLen++
}

// WriteBits appends the low n bits (1..64) of v, most significant first.
// Bits of v above n must be zero.
func (w *Writer) WriteBits(v uint64, n int) error {
	if n <= 0 || n > 64 {
		return ErrInvalidWrite
	}
	if n < 64 && v>>uint(n) != 0 {
		return ErrInvalidWrite
	}
	for i := n - 1; i >= 0; i-- {
		w.writeBit(v>>uint(i)&1 == 1)
	}
	return nil
}

// Append copies every bit written to other onto w.
func (w *Writer) Append(other *Writer) {
	b := other.Buffer()
	for i := 0; i < b.Len(); i++ {
		w.writeBit(b.Bit(i))
	}
}

// Buffer returns a snapshot of the written bits.
func (w *Writer) Buffer() Buffer {
	buf := make([]byte, len(w.buf))
	copy(buf, w.buf)
	return Buffer{buf: buf, bitLen: w.bitLen}
}

// Hex renders the written bits as uppercase hex, zero-padding the final
// digit.
func (w *Writer) Hex() string {
	digits := (w.bitLen + 3) / 4
	var sb strings.Builder
	sb.Grow(digits)
	for i := 0; i < digits; i++ {
		b := w.buf[i/2]
		if i%2 == 0 {
			b >>= 4
		}
		sb.WriteByte(hexDigits[b&0xF])
	}
	return sb.String()
}
