package solutions

import (
	"fmt"
	"strconv"
)

func day02Reports(input string) ([][]int, error) {
	var reports [][]int
	for _, line := range lines(input) {
		ints, err := intFields(line)
		if err != nil {
			return nil, fmt.Errorf("report line %q: %w", line, err)
		}
		if len(ints) < 2 {
			return nil, fmt.Errorf("report line %q: need at least two levels", line)
		}
		reports = append(reports, ints)
	}
	return reports, nil
}

// day02Safe reports whether the levels are strictly monotonic with steps
// of 1 to 3.
func day02Safe(levels []int) bool {
	increasing := levels[1] > levels[0]
	for i := 0; i < len(levels)-1; i++ {
		d := levels[i+1] - levels[i]
		if !increasing {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

func day02Part1(input string) (string, error) {
	reports, err := day02Reports(input)
	if err != nil {
		return "", err
	}

	safe := 0
	for _, levels := range reports {
		if day02Safe(levels) {
			safe++
		}
	}
	return strconv.Itoa(safe), nil
}

func day02Part2(input string) (string, error) {
	reports, err := day02Reports(input)
	if err != nil {
		return "", err
	}

	safe := 0
	scratch := make([]int, 0, 16)
	for _, levels := range reports {
		if day02Safe(levels) {
			safe++
			continue
		}
		for skip := range levels {
			scratch = scratch[:0]
			for i, n := range levels {
				if i != skip {
					scratch = append(scratch, n)
				}
			}
			if day02Safe(scratch) {
				safe++
				break
			}
		}
	}
	return strconv.Itoa(safe), nil
}
