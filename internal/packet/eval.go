package packet

// VersionSum adds the version field of every packet in the tree.
func VersionSum(p Packet) uint64 {
	sum := uint64(p.Version)
	for _, child := range p.Children {
		sum += VersionSum(child)
	}
	return sum
}

// Evaluate computes the value of p. Operands are evaluated left to right;
// comparisons compare the first operand against the second.
func Evaluate(p Packet) (uint64, error) {
	if p.Kind == KindLiteral {
		return p.Literal, nil
	}
	if err := checkArity(p.Kind, len(p.Children)); err != nil {
		return 0, err
	}

	values := make([]uint64, len(p.Children))
	for i, child := range p.Children {
		v, err := Evaluate(child)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}

	switch p.Kind {
	case KindSum:
		var total uint64
		for _, v := range values {
			total += v
		}
		return total, nil
	case KindProduct:
		total := uint64(1)
		for _, v := range values {
			total *= v
		}
		return total, nil
	case KindMinimum:
		best := values[0]
		for _, v := range values[1:] {
			best = min(best, v)
		}
		return best, nil
	case KindMaximum:
		best := values[0]
		for _, v := range values[1:] {
			best = max(best, v)
		}
		return best, nil
	case KindGreater:
		return boolValue(values[0] > values[1]), nil
	case KindLess:
		return boolValue(values[0] < values[1]), nil
	case KindEqual:
		return boolValue(values[0] == values[1]), nil
	default:
		return 0, ErrUnknownKind
	}
}

func boolValue(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
