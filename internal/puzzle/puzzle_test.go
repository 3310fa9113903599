package puzzle

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/bitsctl/internal/packet"
	"github.com/danmuck/bitsctl/internal/testutil/testlog"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "day_16.in")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	path := writeInput(t, "first\r\nsecond\n\nfourth")
	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("read lines: %v", err)
	}
	want := []string{"first", "second", "", "fourth"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}

	if _, err := ReadLines(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestRunPartsDay16(t *testing.T) {
	testlog.Start(t)

	tests := []struct {
		input string
		one   uint64
		two   uint64
	}{
		{"8A004A801A8002F478\n", 16, 15},
		{"\nA0016C880162017C3686B18A3D4780\n", 31, 54},
		{"  9C0141080250320F1802104A08  \n", 20, 1},
	}
	for _, tt := range tests {
		path := writeInput(t, tt.input)
		one, err := RunPartOne[packet.Packet, uint64](path, Day16{})
		if err != nil {
			t.Fatalf("part one: %v", err)
		}
		if one != tt.one {
			t.Fatalf("part one: got %d want %d", one, tt.one)
		}
		two, err := RunPartTwo[packet.Packet, uint64](path, Day16{})
		if err != nil {
			t.Fatalf("part two: %v", err)
		}
		if two != tt.two {
			t.Fatalf("part two: got %d want %d", two, tt.two)
		}
	}
}

func TestRunAllPrintsBothParts(t *testing.T) {
	testlog.Start(t)

	path := writeInput(t, "C200B40A82\n")
	var out bytes.Buffer
	if err := RunAll[packet.Packet, uint64](&out, path, Day16{}); err != nil {
		t.Fatalf("run all: %v", err)
	}
	if got, want := out.String(), "Part One\n14\nPart Two\n3\n"; got != want {
		t.Fatalf("output mismatch:\n%q\nwant:\n%q", got, want)
	}
}

func TestRunDay16Errors(t *testing.T) {
	testlog.Start(t)

	if _, err := RunPartOne[packet.Packet, uint64](writeInput(t, "\n  \n"), Day16{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := RunPartOne[packet.Packet, uint64](writeInput(t, "XYZ\n"), Day16{}); !errors.Is(err, packet.ErrInvalidHex) {
		t.Fatalf("expected ErrInvalidHex, got %v", err)
	}

	// A three-operand comparison fails before either part runs.
	var out bytes.Buffer
	err := RunAll[packet.Packet, uint64](&out, writeInput(t, "3600C40882106\n"), Day16{})
	if !errors.Is(err, packet.ErrInvalidArity) {
		t.Fatalf("expected ErrInvalidArity, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("partial output written: %q", out.String())
	}

	limited := Day16{Limits: packet.Limits{MaxDepth: 2}}
	if _, err := RunPartTwo[packet.Packet, uint64](writeInput(t, "220048801312\n"), limited); !errors.Is(err, packet.ErrTooDeep) {
		t.Fatalf("expected ErrTooDeep, got %v", err)
	}
}
