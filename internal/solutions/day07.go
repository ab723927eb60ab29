package solutions

import (
	"fmt"
	"strconv"
	"strings"
)

type day07Case struct {
	target   int64
	operands []int64
}

func day07Parse(input string) ([]day07Case, error) {
	var cases []day07Case
	for _, line := range lines(input) {
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("calibration line %q: expected target followed by ':'", line)
		}
		target, err := strconv.ParseInt(strings.TrimSpace(head), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("calibration line %q: invalid target", line)
		}
		fields := strings.Fields(tail)
		if len(fields) == 0 {
			return nil, fmt.Errorf("calibration line %q: need at least one operand", line)
		}
		operands := make([]int64, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("calibration line %q: invalid operand %q", line, f)
			}
			operands[i] = n
		}
		cases = append(cases, day07Case{target: target, operands: operands})
	}
	return cases, nil
}

// day07UnConcat strips x from the end of n's decimal digits, if present.
func day07UnConcat(n, x int64) (int64, bool) {
	m := int64(10)
	for m <= x {
		m *= 10
	}
	if n%m != x {
		return 0, false
	}
	return n / m, true
}

// day07Computable works right to left with inverse operations, pruning
// branches that cannot reach the target.
func day07Computable(target int64, operands []int64, concat bool) bool {
	last := operands[len(operands)-1]
	rest := operands[:len(operands)-1]
	if len(rest) == 0 {
		return target == last
	}

	if last != 0 && target%last == 0 && day07Computable(target/last, rest, concat) {
		return true
	}
	if concat {
		if head, ok := day07UnConcat(target, last); ok && day07Computable(head, rest, concat) {
			return true
		}
	}
	return day07Computable(target-last, rest, concat)
}

func day07Sum(input string, concat bool) (string, error) {
	cases, err := day07Parse(input)
	if err != nil {
		return "", err
	}

	var sum int64
	for _, c := range cases {
		if day07Computable(c.target, c.operands, concat) {
			sum += c.target
		}
	}
	return strconv.FormatInt(sum, 10), nil
}

func day07Part1(input string) (string, error) {
	return day07Sum(input, false)
}

func day07Part2(input string) (string, error) {
	return day07Sum(input, true)
}
