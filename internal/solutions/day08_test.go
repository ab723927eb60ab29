package solutions

import "testing"

const day08Sample = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............`

func TestDay08Part1(t *testing.T) {
	testSolution(t, day08Part1, day08Sample, "14")
}

func TestDay08Part2(t *testing.T) {
	testSolution(t, day08Part2, day08Sample, "34")
}

func TestDay08Part1_NoAntennas(t *testing.T) {
	testSolution(t, day08Part1, "....\n....", "0")
}
