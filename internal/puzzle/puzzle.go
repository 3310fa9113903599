// Package puzzle runs two-part puzzles against line-oriented input files.
package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// Puzzle parses an input once and answers both parts from it.
type Puzzle[In, Out any] interface {
	Parse(lines []string) (In, error)
	Part1(in In) (Out, error)
	Part2(in In) (Out, error)
}

// ReadLines returns the lines of the file at path without line endings.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle input: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read puzzle input (%s): %w", path, err)
	}
	return lines, nil
}

func load[In, Out any](path string, p Puzzle[In, Out]) (In, error) {
	var zero In
	lines, err := ReadLines(path)
	if err != nil {
		return zero, err
	}
	in, err := p.Parse(lines)
	if err != nil {
		return zero, fmt.Errorf("parse puzzle input (%s): %w", path, err)
	}
	return in, nil
}

func solve[In, Out any](part string, in In, fn func(In) (Out, error)) (Out, error) {
	started := time.Now()
	out, err := fn(in)
	if err != nil {
		var zero Out
		return zero, fmt.Errorf("part %s: %w", part, err)
	}
	log.Debug().Str("part", part).Dur("elapsed", time.Since(started)).Msg("solved")
	return out, nil
}

// RunAll solves both parts and prints them to w.
func RunAll[In, Out any](w io.Writer, path string, p Puzzle[In, Out]) error {
	in, err := load(path, p)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("loaded puzzle input")

	one, err := solve("one", in, p.Part1)
	if err != nil {
		return err
	}
	two, err := solve("two", in, p.Part2)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Part One\n%v\nPart Two\n%v\n", one, two)
	return err
}

func RunPartOne[In, Out any](path string, p Puzzle[In, Out]) (Out, error) {
	in, err := load(path, p)
	if err != nil {
		var zero Out
		return zero, err
	}
	return solve("one", in, p.Part1)
}

func RunPartTwo[In, Out any](path string, p Puzzle[In, Out]) (Out, error) {
	in, err := load(path, p)
	if err != nil {
		var zero Out
		return zero, err
	}
	return solve("two", in, p.Part2)
}
