package solutions

import (
	"fmt"
	"sort"
	"strconv"
)

func day01Lists(input string) (left, right []int, err error) {
	for _, line := range lines(input) {
		ints, err := intFields(line)
		if err != nil || len(ints) != 2 {
			return nil, nil, fmt.Errorf("expected two integers per line, got %q", line)
		}
		left = append(left, ints[0])
		right = append(right, ints[1])
	}
	return left, right, nil
}

func day01Part1(input string) (string, error) {
	left, right, err := day01Lists(input)
	if err != nil {
		return "", err
	}

	sort.Ints(left)
	sort.Ints(right)

	sum := 0
	for i := range left {
		d := right[i] - left[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return strconv.Itoa(sum), nil
}

func day01Part2(input string) (string, error) {
	left, right, err := day01Lists(input)
	if err != nil {
		return "", err
	}

	counts := make(map[int]int, len(right))
	for _, n := range right {
		counts[n]++
	}

	sum := 0
	for _, n := range left {
		sum += n * counts[n]
	}
	return strconv.Itoa(sum), nil
}
