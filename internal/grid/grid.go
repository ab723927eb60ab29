// Package grid provides the 2D helpers shared by the map-based puzzles.
package grid

import "strings"

// Vec2 is a grid coordinate or direction. X is the column, Y the row, with
// Y growing downwards.
type Vec2 struct {
	X, Y int
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// RotateClockwise turns a direction 90° clockwise in screen coordinates.
func (v Vec2) RotateClockwise() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Grid is a rectangular character map.
type Grid struct {
	rows [][]byte
}

// Parse builds a grid from newline-separated rows. Trailing newlines are
// ignored so the same text works with or without a final line break.
func Parse(input string) Grid {
	trimmed := strings.TrimRight(input, "\n")
	if trimmed == "" {
		return Grid{}
	}
	lines := strings.Split(trimmed, "\n")
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	return Grid{rows: rows}
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g.rows)
}

// Rectangular reports whether every row has the same width.
func (g Grid) Rectangular() bool {
	for _, row := range g.rows {
		if len(row) != len(g.rows[0]) {
			return false
		}
	}
	return true
}

// Cols returns the width of the first row.
func (g Grid) Cols() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// In reports whether the position lies inside the grid.
func (g Grid) In(p Vec2) bool {
	return p.Y >= 0 && p.Y < len(g.rows) && p.X >= 0 && p.X < len(g.rows[p.Y])
}

// At returns the cell value, or 0 for positions outside the grid.
func (g Grid) At(p Vec2) byte {
	if !g.In(p) {
		return 0
	}
	return g.rows[p.Y][p.X]
}

// Positions returns every cell holding the given value, in row order.
func (g Grid) Positions(b byte) []Vec2 {
	var ps []Vec2
	for y, row := range g.rows {
		for x, c := range row {
			if c == b {
				ps = append(ps, Vec2{X: x, Y: y})
			}
		}
	}
	return ps
}
