package bits

// Reader reads big-endian fields from a Buffer. The position only moves
// when a read succeeds.
type Reader struct {
	buf Buffer
	pos int
}

func NewReader(buf Buffer) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the index of the next unread bit.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return r.buf.Len() - r.pos
}

// ReadBits reads n bits (1..64) as an unsigned big-endian integer.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n <= 0 || n > 64 {
		return 0, ErrInvalidRead
	}
	if n > r.Remaining() {
		return 0, ErrTruncated
	}
	var v uint64
	for i := 0; i < n; i++ {
		v <<= 1
		if r.buf.Bit(r.pos + i) {
			v |= 1
		}
	}
	r.pos += n
	return v, nil
}

func (r *Reader) ReadBit() (bool, error) {
	v, err := r.ReadBits(1)
	if err != nil {
		return false, err
	}
	return v == 1, nil
}
