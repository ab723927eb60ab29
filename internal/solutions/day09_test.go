package solutions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay09Part1(t *testing.T) {
	testSolution(t, day09Part1, "2333133121414131402", "1928")
}

func TestDay09Part2(t *testing.T) {
	testSolution(t, day09Part2, "2333133121414131402", "2858")
}

func TestDay09Part1_TrailingNewline(t *testing.T) {
	testSolution(t, day09Part1, "2333133121414131402\n", "1928")
}

func TestDay09_RejectsNonDigits(t *testing.T) {
	_, err := day09Part1("12a4")
	assert.ErrorContains(t, err, "only digits")
}
