package packet

import (
	"github.com/danmuck/bitsctl/internal/bits"
)

// Encode renders p as an uppercase hex transmission. Literals use the
// fewest groups that hold their value and operators keep their LengthType,
// so Decode(Encode(p)) reproduces p.
func Encode(p Packet) (string, error) {
	var w bits.Writer
	if err := writePacket(&w, p); err != nil {
		return "", err
	}
	return w.Hex(), nil
}

func writePacket(w *bits.Writer, p Packet) error {
	if p.Version > 7 {
		return ErrFieldOverflow
	}
	if p.Kind > KindEqual {
		return ErrUnknownKind
	}
	if err := w.WriteBits(uint64(p.Version), versionWidth); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(p.Kind), kindWidth); err != nil {
		return err
	}
	if p.Kind == KindLiteral {
		return writeLiteral(w, p.Literal)
	}
	if err := checkArity(p.Kind, len(p.Children)); err != nil {
		return err
	}

	var body bits.Writer
	for _, child := range p.Children {
		if err := writePacket(&body, child); err != nil {
			return err
		}
	}

	switch p.LengthType {
	case LengthBits:
		if body.Len() >= 1<<bitLengthWidth {
			return ErrFieldOverflow
		}
		if err := w.WriteBits(0, 1); err != nil {
			return err
		}
		if err := w.WriteBits(uint64(body.Len()), bitLengthWidth); err != nil {
			return err
		}
	case LengthCount:
		if len(p.Children) >= 1<<countLengthWidth {
			return ErrFieldOverflow
		}
		if err := w.WriteBits(1, 1); err != nil {
			return err
		}
		if err := w.WriteBits(uint64(len(p.Children)), countLengthWidth); err != nil {
			return err
		}
	default:
		return ErrFieldOverflow
	}
	w.Append(&body)
	return nil
}

func writeLiteral(w *bits.Writer, value uint64) error {
	groups := 1
	for v := value >> 4; v != 0; v >>= 4 {
		groups++
	}
	for i := groups - 1; i >= 0; i-- {
		group := value >> uint(4*i) & 0xF
		if i > 0 {
			group |= 0x10
		}
		if err := w.WriteBits(group, groupWidth); err != nil {
			return err
		}
	}
	return nil
}
