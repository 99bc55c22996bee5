// Package trebuchet solves day 1 of Advent of Code 2023: each line of
// the calibration document hides a two digit number made of its first
// and last digit, and the answer is the total over all lines.
package trebuchet

import (
	"fmt"
	"io"
	"math"
)

// digitsSeen says how many digits the current line has produced so far.
// Past two the exact count stops mattering.
type digitsSeen uint8

const (
	seenNone digitsSeen = iota
	seenOne
	seenTwoOrMore
)

// lineState is the per-line scan state. first is set by the line's
// first digit and never overwritten; last always holds the most recent
// digit. Both hold the digit characters themselves ('0'..'9').
type lineState struct {
	seen  digitsSeen
	first byte
	last  byte
}

func (s *lineState) observe(c byte) {
	if c < '0' || c > '9' {
		return
	}
	switch s.seen {
	case seenNone:
		s.seen = seenOne
		s.first, s.last = c, c
	case seenOne:
		s.seen = seenTwoOrMore
		s.last = c
	default:
		s.last = c
	}
}

// value is the line's calibration value. A line with a single digit
// uses it as both ends; a line with no digits is worth 0.
func (s *lineState) value() int {
	if s.seen == seenNone {
		return 0
	}
	return 10*int(s.first-'0') + int(s.last-'0')
}

func (s *lineState) reset() {
	*s = lineState{}
}

// CalibrationValue returns the calibration value of a single line: ten
// times its first digit plus its last. Only ASCII digits count; every
// other byte is skipped over.
func CalibrationValue(line string) int {
	var st lineState
	for i := 0; i < len(line); i++ {
		st.observe(line[i])
	}
	return st.value()
}

// AddWouldOverflow reports whether a+b would exceed the largest int.
// Both operands must be non-negative.
func AddWouldOverflow(a, b int) bool {
	return b > math.MaxInt-a
}

// OverflowError means the running total can no longer grow without
// exceeding the largest representable int.
type OverflowError struct {
	Sum   int // total accumulated so far
	Value int // calibration value that does not fit
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %d + %d > %d", e.Sum, e.Value, math.MaxInt)
}

// Summer totals calibration values line by line. It implements
// io.Writer so a stream can be pushed through it in arbitrary chunks;
// newlines end lines, and Sum ends the final one. The zero value is
// ready to use.
type Summer struct {
	total int
	cur   lineState
}

// Write scans p one byte at a time. It stops with an *OverflowError as
// soon as a completed line would push the total past the largest int,
// reporting how many bytes it consumed before that line's newline.
func (s *Summer) Write(p []byte) (int, error) {
	for i, c := range p {
		if c != '\n' {
			s.cur.observe(c)
			continue
		}
		if err := s.endLine(); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Sum ends the final line — with or without a trailing newline — and
// returns the accumulated total. Calling Sum again returns the same
// total.
func (s *Summer) Sum() (int, error) {
	if err := s.endLine(); err != nil {
		return 0, err
	}
	return s.total, nil
}

func (s *Summer) endLine() error {
	v := s.cur.value()
	if AddWouldOverflow(s.total, v) {
		return &OverflowError{Sum: s.total, Value: v}
	}
	s.total += v
	s.cur.reset()
	return nil
}

// SumReader consumes r to end of stream and returns the total of every
// line's calibration value. The stream is read once, front to back; on
// error no partial total is returned.
func SumReader(r io.Reader) (int, error) {
	var s Summer
	if _, err := io.Copy(&s, r); err != nil {
		return 0, err
	}
	return s.Sum()
}
