package packet

import (
	"fmt"
	"strings"
)

// Walk visits p and its descendants in pre-order. Returning false from fn
// skips the children of the packet just visited.
func Walk(p Packet, fn func(p Packet, depth int) bool) {
	walk(p, 0, fn)
}

func walk(p Packet, depth int, fn func(Packet, int) bool) {
	if !fn(p, depth) {
		return
	}
	for _, child := range p.Children {
		walk(child, depth+1, fn)
	}
}

// Format renders the tree one packet per line, indented by depth.
func Format(p Packet) string {
	var sb strings.Builder
	Walk(p, func(p Packet, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		if p.IsLiteral() {
			fmt.Fprintf(&sb, "v%d literal %d\n", p.Version, p.Literal)
			return true
		}
		fmt.Fprintf(&sb, "v%d %s [%s, %d operands]\n", p.Version, p.Kind, p.LengthType, len(p.Children))
		return true
	})
	return sb.String()
}
