package solutions

import (
	"fmt"
	"strconv"
	"strings"
)

func day11Stones(input string) (map[uint64]uint64, error) {
	stones := make(map[uint64]uint64)
	for _, f := range strings.Fields(input) {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("stone %q: expected unsigned integer", f)
		}
		stones[n]++
	}
	return stones, nil
}

func day11Digits(n uint64) int {
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}

// day11Blink applies one blink to the whole multiset at once. Stones with
// the same engraving behave identically, so only distinct values are
// simulated.
func day11Blink(stones map[uint64]uint64) map[uint64]uint64 {
	next := make(map[uint64]uint64, len(stones))
	for n, count := range stones {
		switch digits := day11Digits(n); {
		case n == 0:
			next[1] += count
		case digits%2 == 0:
			m := uint64(1)
			for i := 0; i < digits/2; i++ {
				m *= 10
			}
			next[n/m] += count
			next[n%m] += count
		default:
			next[n*2024] += count
		}
	}
	return next
}

func day11Count(input string, blinks int) (string, error) {
	stones, err := day11Stones(input)
	if err != nil {
		return "", err
	}
	for i := 0; i < blinks; i++ {
		stones = day11Blink(stones)
	}

	var total uint64
	for _, count := range stones {
		total += count
	}
	return strconv.FormatUint(total, 10), nil
}

func day11Part1(input string) (string, error) {
	return day11Count(input, 25)
}

func day11Part2(input string) (string, error) {
	return day11Count(input, 75)
}
