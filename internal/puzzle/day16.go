package puzzle

import (
	"errors"
	"strings"

	"github.com/danmuck/bitsctl/internal/packet"
)

var ErrEmptyInput = errors.New("puzzle: input has no transmission line")

// Day16 decodes a BITS transmission: part one is the version sum, part two
// the evaluated value.
type Day16 struct {
	Limits packet.Limits
}

func (d Day16) Parse(lines []string) (packet.Packet, error) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return packet.DecodeWithLimits(line, d.Limits)
	}
	return packet.Packet{}, ErrEmptyInput
}

func (Day16) Part1(p packet.Packet) (uint64, error) {
	return packet.VersionSum(p), nil
}

func (Day16) Part2(p packet.Packet) (uint64, error) {
	return packet.Evaluate(p)
}
