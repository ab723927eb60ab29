package solutions

import (
	"regexp"
	"strconv"
)

// day03Instr matches the three instruction forms in the corrupted memory
// dump. Everything between matches is junk to be skipped. Spaces are
// allowed before each operand but not before the comma or closing paren.
var day03Instr = regexp.MustCompile(`mul\( *(-?\d+), *(-?\d+)\)|do\(\)|don't\(\)`)

func day03Sum(input string, gated bool) (string, error) {
	sum := 0
	enabled := true
	for _, m := range day03Instr.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if !gated || enabled {
				// Submatches are guaranteed numeric by the pattern.
				a, _ := strconv.Atoi(m[1])
				b, _ := strconv.Atoi(m[2])
				sum += a * b
			}
		}
	}
	return strconv.Itoa(sum), nil
}

func day03Part1(input string) (string, error) {
	return day03Sum(input, false)
}

func day03Part2(input string) (string, error) {
	return day03Sum(input, true)
}
