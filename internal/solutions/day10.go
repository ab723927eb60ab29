package solutions

import (
	"strconv"

	"github.com/asloane/aoc2024/internal/grid"
)

var day10Directions = []grid.Vec2{
	{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0},
}

// day10Summits walks every gradually-rising trail from the trailhead and
// calls reach for each time a '9' square is reached. Distinct summits vs
// distinct trails is the caller's concern.
func day10Summits(g grid.Grid, head grid.Vec2, reach func(grid.Vec2)) {
	stack := []grid.Vec2{head}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		h := g.At(p)
		if h == '9' {
			reach(p)
			continue
		}
		for _, d := range day10Directions {
			next := p.Add(d)
			if g.At(next) == h+1 {
				stack = append(stack, next)
			}
		}
	}
}

func day10Part1(input string) (string, error) {
	g := grid.Parse(input)

	total := 0
	for _, head := range g.Positions('0') {
		summits := make(map[grid.Vec2]bool)
		day10Summits(g, head, func(p grid.Vec2) {
			summits[p] = true
		})
		total += len(summits)
	}
	return strconv.Itoa(total), nil
}

func day10Part2(input string) (string, error) {
	g := grid.Parse(input)

	total := 0
	for _, head := range g.Positions('0') {
		day10Summits(g, head, func(grid.Vec2) {
			total++
		})
	}
	return strconv.Itoa(total), nil
}
