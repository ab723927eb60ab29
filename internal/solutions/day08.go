package solutions

import (
	"strconv"

	"github.com/asloane/aoc2024/internal/grid"
)

func day08Antennas(g grid.Grid) map[byte][]grid.Vec2 {
	antennas := make(map[byte][]grid.Vec2)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			p := grid.Vec2{X: x, Y: y}
			if c := g.At(p); c != '.' && c != 0 {
				antennas[c] = append(antennas[c], p)
			}
		}
	}
	return antennas
}

func day08Pairs(antennas map[byte][]grid.Vec2, fn func(a, b grid.Vec2)) {
	for _, ps := range antennas {
		for i, a := range ps {
			for _, b := range ps[i+1:] {
				fn(a, b)
			}
		}
	}
}

func day08Part1(input string) (string, error) {
	g := grid.Parse(input)
	antinodes := make(map[grid.Vec2]bool)

	day08Pairs(day08Antennas(g), func(a, b grid.Vec2) {
		d := a.Sub(b)
		if p := a.Add(d); g.In(p) {
			antinodes[p] = true
		}
		if p := b.Sub(d); g.In(p) {
			antinodes[p] = true
		}
	})
	return strconv.Itoa(len(antinodes)), nil
}

func day08Part2(input string) (string, error) {
	g := grid.Parse(input)
	antinodes := make(map[grid.Vec2]bool)

	day08Pairs(day08Antennas(g), func(a, b grid.Vec2) {
		d := a.Sub(b)
		for p := a; g.In(p); p = p.Add(d) {
			antinodes[p] = true
		}
		for p := b; g.In(p); p = p.Sub(d) {
			antinodes[p] = true
		}
	})
	return strconv.Itoa(len(antinodes)), nil
}
