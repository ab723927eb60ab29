package solutions

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type day05Input struct {
	// before[a][b] means page a must be printed before page b.
	before  map[int]map[int]bool
	updates [][]int
}

func day05Parse(input string) (day05Input, error) {
	parsed := day05Input{before: make(map[int]map[int]bool)}

	inRules := true
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		if line == "" {
			inRules = false
			continue
		}

		if inRules {
			l, r, ok := strings.Cut(line, "|")
			if !ok {
				return day05Input{}, fmt.Errorf("ordering rule %q: expected a|b", line)
			}
			a, err1 := strconv.Atoi(l)
			b, err2 := strconv.Atoi(r)
			if err1 != nil || err2 != nil {
				return day05Input{}, fmt.Errorf("ordering rule %q: expected integers", line)
			}
			if parsed.before[a] == nil {
				parsed.before[a] = make(map[int]bool)
			}
			parsed.before[a][b] = true
			continue
		}

		var update []int
		for _, f := range strings.Split(line, ",") {
			n, err := strconv.Atoi(f)
			if err != nil {
				return day05Input{}, fmt.Errorf("update %q: expected comma-separated integers", line)
			}
			update = append(update, n)
		}
		parsed.updates = append(parsed.updates, update)
	}

	return parsed, nil
}

func (in day05Input) sorted(update []int) bool {
	for i := 0; i < len(update)-1; i++ {
		if in.before[update[i+1]][update[i]] {
			return false
		}
	}
	return true
}

func day05Part1(input string) (string, error) {
	parsed, err := day05Parse(input)
	if err != nil {
		return "", err
	}

	sum := 0
	for _, update := range parsed.updates {
		if parsed.sorted(update) {
			sum += update[len(update)/2]
		}
	}
	return strconv.Itoa(sum), nil
}

func day05Part2(input string) (string, error) {
	parsed, err := day05Parse(input)
	if err != nil {
		return "", err
	}

	sum := 0
	for _, update := range parsed.updates {
		if parsed.sorted(update) {
			continue
		}
		fixed := make([]int, len(update))
		copy(fixed, update)
		sort.SliceStable(fixed, func(i, j int) bool {
			return parsed.before[fixed[i]][fixed[j]]
		})
		sum += fixed[len(fixed)/2]
	}
	return strconv.Itoa(sum), nil
}
