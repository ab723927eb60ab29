// Package solutions holds the per-day solvers and the table used to seed
// the registry at process start.
package solutions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asloane/aoc2024/pkg/puzzle"
)

// All returns the complete solution table. The registry rejects duplicates,
// so a day appearing twice here is a startup error, not a silent overwrite.
func All() []puzzle.Solution {
	return []puzzle.Solution{
		{Day: 1, PartOne: day01Part1, PartTwo: day01Part2},
		{Day: 2, PartOne: day02Part1, PartTwo: day02Part2},
		{Day: 3, PartOne: day03Part1, PartTwo: day03Part2},
		{Day: 4, PartOne: day04Part1, PartTwo: day04Part2},
		{Day: 5, PartOne: day05Part1, PartTwo: day05Part2},
		{Day: 6, PartOne: day06Part1, PartTwo: day06Part2},
		{Day: 7, PartOne: day07Part1, PartTwo: day07Part2},
		{Day: 8, PartOne: day08Part1, PartTwo: day08Part2},
		{Day: 9, PartOne: day09Part1, PartTwo: day09Part2},
		{Day: 10, PartOne: day10Part1, PartTwo: day10Part2},
		{Day: 11, PartOne: day11Part1, PartTwo: day11Part2},
	}
}

// lines splits the input into lines, dropping a trailing newline so the
// last line is not followed by a phantom empty one.
func lines(input string) []string {
	trimmed := strings.TrimRight(input, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// intFields parses a whitespace-separated line of integers.
func intFields(line string) ([]int, error) {
	fields := strings.Fields(line)
	ints := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("expected integer, got %q", f)
		}
		ints = append(ints, n)
	}
	return ints, nil
}
