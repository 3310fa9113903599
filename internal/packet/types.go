package packet

import "fmt"

// Kind is the 3-bit packet type ID.
type Kind uint8

const (
	KindSum     Kind = 0
	KindProduct Kind = 1
	KindMinimum Kind = 2
	KindMaximum Kind = 3
	KindLiteral Kind = 4
	KindGreater Kind = 5
	KindLess    Kind = 6
	KindEqual   Kind = 7
)

func (k Kind) String() string {
	switch k {
	case KindSum:
		return "sum"
	case KindProduct:
		return "product"
	case KindMinimum:
		return "minimum"
	case KindMaximum:
		return "maximum"
	case KindLiteral:
		return "literal"
	case KindGreater:
		return "greater"
	case KindLess:
		return "less"
	case KindEqual:
		return "equal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// IsComparison reports whether k takes exactly two operands and yields 0 or 1.
func (k Kind) IsComparison() bool {
	return k == KindGreater || k == KindLess || k == KindEqual
}

// LengthType selects how an operator bounds its sub-packets on the wire.
type LengthType uint8

const (
	// LengthBits is followed by a 15-bit total length of all sub-packets.
	LengthBits LengthType = 0
	// LengthCount is followed by an 11-bit number of sub-packets.
	LengthCount LengthType = 1
)

func (lt LengthType) String() string {
	if lt == LengthCount {
		return "count"
	}
	return "bits"
}

const (
	versionWidth     = 3
	kindWidth        = 3
	groupWidth       = 5
	bitLengthWidth   = 15
	countLengthWidth = 11
)

// Packet is one node of a decoded transmission. Literal packets carry
// Literal and no children; operator packets own their Children in wire
// order. Packets are values and are not modified after decoding.
type Packet struct {
	Version    uint8
	Kind       Kind
	Literal    uint64
	LengthType LengthType
	Children   []Packet
}

// IsLiteral reports whether p carries a literal value.
func (p Packet) IsLiteral() bool {
	return p.Kind == KindLiteral
}

// NewLiteral builds a literal packet.
func NewLiteral(version uint8, value uint64) Packet {
	return Packet{Version: version, Kind: KindLiteral, Literal: value}
}

// NewOperator builds an operator packet over children.
func NewOperator(version uint8, kind Kind, lt LengthType, children ...Packet) Packet {
	return Packet{Version: version, Kind: kind, LengthType: lt, Children: children}
}
