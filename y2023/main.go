// Command y2023 runs the Advent of Code 2023 solutions. Each day is a
// D<day>p<part> method on solver, and its doc comment carries the
// sample input and the answer the harness verifies before running the
// real input.
package main

import (
	_ "embed"

	"aoc"
	"aoc/trebuchet"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	var vals []int
	s.ForLines(func(line string) {
		vals = append(vals, trebuchet.CalibrationValue(line))
	})
	return aoc.Sum(vals...)
}
