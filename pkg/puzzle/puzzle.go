// Package puzzle defines the day/part key space and the solver contract
// shared by the dispatch runner and the benchmark harness.
package puzzle

import (
	"fmt"
	"strconv"
)

// Day identifies one calendar day of the event.
type Day int

// MinDay and MaxDay bound the valid day range.
const (
	MinDay Day = 1
	MaxDay Day = 25
)

// Valid reports whether the day falls inside the event calendar.
func (d Day) Valid() bool {
	return d >= MinDay && d <= MaxDay
}

func (d Day) String() string {
	return fmt.Sprintf("day %d", int(d))
}

// ParseDay converts a selector argument into a Day.
// Out-of-range or non-numeric values are rejected here, before any lookup.
func ParseDay(s string) (Day, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: must be a number between %d and %d", s, MinDay, MaxDay)
	}
	d := Day(n)
	if !d.Valid() {
		return 0, fmt.Errorf("invalid day %d: must be between %d and %d", n, MinDay, MaxDay)
	}
	return d, nil
}

// Part identifies one half of a day's puzzle.
type Part int

const (
	PartOne Part = iota + 1
	PartTwo
)

// Valid reports whether the part is one of the two known variants.
func (p Part) Valid() bool {
	return p == PartOne || p == PartTwo
}

func (p Part) String() string {
	switch p {
	case PartOne:
		return "one"
	case PartTwo:
		return "two"
	}
	return fmt.Sprintf("part(%d)", int(p))
}

// ParsePart converts a selector argument into a Part.
// Both the word form ("one", "two") and the digit form ("1", "2") are accepted.
func ParsePart(s string) (Part, error) {
	switch s {
	case "one", "1":
		return PartOne, nil
	case "two", "2":
		return PartTwo, nil
	}
	return 0, fmt.Errorf("invalid part %q: must be \"one\" or \"two\"", s)
}

// Key is the (day, part) pair identifying one solvable unit of work.
// It is the sole lookup key into the registry.
type Key struct {
	Day  Day
	Part Part
}

func (k Key) String() string {
	return fmt.Sprintf("%s part %s", k.Day, k.Part)
}

// Func is a solver implementation: raw puzzle text in, printable answer out.
// Implementations must be stateless and reentrant so they can be invoked
// repeatedly for benchmarking.
type Func func(input string) (string, error)

// Solution groups the solvers a single day contributes to the registry.
// Either part may be nil while the day is still in progress.
type Solution struct {
	Day     Day
	PartOne Func
	PartTwo Func
}
