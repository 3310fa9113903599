package packet

import (
	"errors"

	"github.com/danmuck/bitsctl/internal/bits"
)

// Limits constrains decode recursion.
type Limits struct {
	MaxDepth int
}

func DefaultLimits() Limits {
	return Limits{MaxDepth: 256}
}

// Decode parses the outermost packet of a hex transmission. Padding bits
// after that packet are ignored.
func Decode(hex string) (Packet, error) {
	return DecodeWithLimits(hex, DefaultLimits())
}

func DecodeWithLimits(hex string, limits Limits) (Packet, error) {
	buf, err := bits.Decode(hex)
	if err != nil {
		return Packet{}, err
	}
	return Parse(bits.NewReader(buf), limits)
}

// Parse reads one packet starting at the reader's position and leaves the
// reader just past its last bit.
func Parse(r *bits.Reader, limits Limits) (Packet, error) {
	if limits.MaxDepth <= 0 {
		limits = DefaultLimits()
	}
	return parse(r, limits, 1)
}

func parse(r *bits.Reader, limits Limits, depth int) (Packet, error) {
	start := r.Pos()
	if depth > limits.MaxDepth {
		return Packet{}, &ParseError{Offset: start, Err: ErrTooDeep}
	}

	version, err := r.ReadBits(versionWidth)
	if err != nil {
		return Packet{}, &ParseError{Offset: start, Err: err}
	}
	kind, err := r.ReadBits(kindWidth)
	if err != nil {
		return Packet{}, &ParseError{Offset: start, Err: err}
	}

	p := Packet{Version: uint8(version), Kind: Kind(kind)}
	if p.Kind == KindLiteral {
		p.Literal, err = parseLiteral(r)
		if err != nil {
			return Packet{}, &ParseError{Offset: start, Err: err}
		}
		return p, nil
	}

	p.LengthType, p.Children, err = parseOperands(r, limits, depth)
	if err != nil {
		var nested *ParseError
		if errors.As(err, &nested) {
			return Packet{}, err
		}
		return Packet{}, &ParseError{Offset: start, Err: err}
	}
	if err := checkArity(p.Kind, len(p.Children)); err != nil {
		return Packet{}, &ParseError{Offset: start, Err: err}
	}
	return p, nil
}

func parseLiteral(r *bits.Reader) (uint64, error) {
	var value uint64
	for {
		group, err := r.ReadBits(groupWidth)
		if err != nil {
			return 0, err
		}
		if value>>60 != 0 {
			return 0, ErrLiteralOverflow
		}
		value = value<<4 | group&0xF
		if group&0x10 == 0 {
			return value, nil
		}
	}
}

// parseOperands reads the length-type header and the sub-packets it bounds.
// Both encodings share one loop; only the stop condition differs.
func parseOperands(r *bits.Reader, limits Limits, depth int) (LengthType, []Packet, error) {
	flag, err := r.ReadBit()
	if err != nil {
		return 0, nil, err
	}

	lt := LengthBits
	width := bitLengthWidth
	if flag {
		lt = LengthCount
		width = countLengthWidth
	}
	n, err := r.ReadBits(width)
	if err != nil {
		return 0, nil, err
	}

	var more func(children []Packet) bool
	end := 0
	if lt == LengthBits {
		if int(n) > r.Remaining() {
			return 0, nil, ErrTruncated
		}
		end = r.Pos() + int(n)
		more = func([]Packet) bool { return r.Pos() < end }
	} else {
		more = func(children []Packet) bool { return len(children) < int(n) }
	}

	var children []Packet
	for more(children) {
		child, err := parse(r, limits, depth+1)
		if err != nil {
			return 0, nil, err
		}
		children = append(children, child)
	}
	if lt == LengthBits && r.Pos() != end {
		return 0, nil, ErrLengthMismatch
	}
	return lt, children, nil
}
