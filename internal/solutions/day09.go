package solutions

import (
	"fmt"
	"strconv"
	"strings"
)

// day09Digits parses the dense disk map: alternating file and free-space
// lengths, one digit each.
func day09Digits(input string) ([]int, error) {
	trimmed := strings.TrimSpace(input)
	digits := make([]int, 0, len(trimmed))
	for _, c := range trimmed {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("disk map must contain only digits, got %q", c)
		}
		digits = append(digits, int(c-'0'))
	}
	return digits, nil
}

func day09Part1(input string) (string, error) {
	digits, err := day09Digits(input)
	if err != nil {
		return "", err
	}

	// Expand to one entry per block; -1 marks free space.
	var disk []int
	for i, n := range digits {
		id := -1
		if i%2 == 0 {
			id = i / 2
		}
		for ; n > 0; n-- {
			disk = append(disk, id)
		}
	}

	// Two-pointer compaction: fill each gap from the tail.
	i, j := 0, len(disk)-1
	var sum int64
	for i <= j {
		if disk[i] == -1 {
			for i <= j && disk[j] == -1 {
				j--
			}
			if i > j {
				break
			}
			disk[i], disk[j] = disk[j], -1
		}
		sum += int64(i) * int64(disk[i])
		i++
	}
	return strconv.FormatInt(sum, 10), nil
}

type day09File struct {
	id    int
	start int
	size  int
}

type day09Span struct {
	start int
	size  int
}

func day09Part2(input string) (string, error) {
	digits, err := day09Digits(input)
	if err != nil {
		return "", err
	}

	var files []day09File
	var free []day09Span
	pos := 0
	for i, n := range digits {
		if i%2 == 0 {
			files = append(files, day09File{id: i / 2, start: pos, size: n})
		} else if n > 0 {
			free = append(free, day09Span{start: pos, size: n})
		}
		pos += n
	}

	// Highest id first; each file moves at most once, to the leftmost span
	// that fits and sits left of the file.
	for i := len(files) - 1; i >= 0; i-- {
		f := &files[i]
		for s := range free {
			span := &free[s]
			if span.start >= f.start {
				break
			}
			if span.size < f.size {
				continue
			}
			f.start = span.start
			span.start += f.size
			span.size -= f.size
			break
		}
	}

	var sum int64
	for _, f := range files {
		for b := 0; b < f.size; b++ {
			sum += int64(f.id) * int64(f.start+b)
		}
	}
	return strconv.FormatInt(sum, 10), nil
}
