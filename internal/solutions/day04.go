package solutions

import (
	"strconv"

	"github.com/asloane/aoc2024/internal/grid"
)

var day04Directions = []grid.Vec2{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

func day04Part1(input string) (string, error) {
	g := grid.Parse(input)
	const word = "XMAS"

	count := 0
	for _, start := range g.Positions('X') {
		for _, d := range day04Directions {
			p := start
			matched := true
			for i := 1; i < len(word); i++ {
				p = p.Add(d)
				if g.At(p) != word[i] {
					matched = false
					break
				}
			}
			if matched {
				count++
			}
		}
	}
	return strconv.Itoa(count), nil
}

func day04Part2(input string) (string, error) {
	g := grid.Parse(input)

	diagonal := func(a, b byte) bool {
		return a == 'M' && b == 'S' || a == 'S' && b == 'M'
	}

	count := 0
	for _, centre := range g.Positions('A') {
		ul := g.At(centre.Add(grid.Vec2{X: -1, Y: -1}))
		dr := g.At(centre.Add(grid.Vec2{X: 1, Y: 1}))
		ur := g.At(centre.Add(grid.Vec2{X: 1, Y: -1}))
		dl := g.At(centre.Add(grid.Vec2{X: -1, Y: 1}))
		if diagonal(ul, dr) && diagonal(ur, dl) {
			count++
		}
	}
	return strconv.Itoa(count), nil
}
