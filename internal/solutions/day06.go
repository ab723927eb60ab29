package solutions

import (
	"errors"
	"strconv"

	"github.com/asloane/aoc2024/internal/grid"
)

func day06Parse(input string) (grid.Grid, grid.Vec2, error) {
	g := grid.Parse(input)
	// The walk indexes its state slice by row width, so ragged maps are
	// rejected up front.
	if !g.Rectangular() {
		return grid.Grid{}, grid.Vec2{}, errors.New("map rows must all have the same width")
	}
	if len(g.Positions('#')) == 0 {
		return grid.Grid{}, grid.Vec2{}, errors.New("no obstruction positions in map")
	}
	starts := g.Positions('^')
	if len(starts) == 0 {
		return grid.Grid{}, grid.Vec2{}, errors.New("no start position in map")
	}
	return g, starts[0], nil
}

// day06Walk traces the guard's patrol. For each square entered it calls
// visit once per entry. It returns true if the patrol loops instead of
// leaving the map; extra, when inside the grid, acts as one additional
// obstruction.
//
// seen must hold rows*cols*4 entries; a cell is marked with gen so the
// caller can reuse the slice across runs without clearing it.
func day06Walk(g grid.Grid, start, extra grid.Vec2, seen []uint32, gen uint32, visit func(grid.Vec2)) bool {
	pos := start
	dir := grid.Vec2{X: 0, Y: -1}
	dirIdx := 0
	cols := g.Cols()

	if visit != nil {
		visit(pos)
	}
	for {
		state := (pos.Y*cols+pos.X)*4 + dirIdx
		if seen[state] == gen {
			return true
		}
		seen[state] = gen

		next := pos.Add(dir)
		if !g.In(next) {
			return false
		}
		if g.At(next) == '#' || next == extra {
			dir = dir.RotateClockwise()
			dirIdx = (dirIdx + 1) % 4
			continue
		}
		pos = next
		if visit != nil {
			visit(pos)
		}
	}
}

func day06Part1(input string) (string, error) {
	g, start, err := day06Parse(input)
	if err != nil {
		return "", err
	}

	visited := make(map[grid.Vec2]bool)
	seen := make([]uint32, g.Rows()*g.Cols()*4)
	day06Walk(g, start, grid.Vec2{X: -1, Y: -1}, seen, 1, func(p grid.Vec2) {
		visited[p] = true
	})
	return strconv.Itoa(len(visited)), nil
}

func day06Part2(input string) (string, error) {
	g, start, err := day06Parse(input)
	if err != nil {
		return "", err
	}

	visited := make(map[grid.Vec2]bool)
	seen := make([]uint32, g.Rows()*g.Cols()*4)
	day06Walk(g, start, grid.Vec2{X: -1, Y: -1}, seen, 1, func(p grid.Vec2) {
		visited[p] = true
	})

	// Only squares on the unobstructed patrol can change it.
	loops := 0
	gen := uint32(1)
	for p := range visited {
		if p == start {
			continue
		}
		gen++
		if day06Walk(g, start, p, seen, gen, nil) {
			loops++
		}
	}
	return strconv.Itoa(loops), nil
}
