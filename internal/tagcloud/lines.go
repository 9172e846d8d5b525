package tagcloud

import (
	"bufio"
	"io"
)

// LineReader delivers input lines in order, without terminators.
// ReadLine returns io.EOF once the input is exhausted; an empty line is
// returned as "" with a nil error.
type LineReader interface {
	ReadLine() (string, error)
}

const maxLineBytes = 1024 * 1024

type scannerLines struct {
	scanner *bufio.Scanner
}

// NewLineScanner reads lines from r. Lines longer than 1 MiB fail the read.
func NewLineScanner(r io.Reader) LineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &scannerLines{scanner: scanner}
}

func (s *scannerLines) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

type sliceLines struct {
	lines []string
	next  int
}

// SliceLines serves lines from memory.
func SliceLines(lines []string) LineReader {
	return &sliceLines{lines: lines}
}

func (s *sliceLines) ReadLine() (string, error) {
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}
