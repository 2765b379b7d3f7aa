package world

import "fmt"

// Origin is the top-left cell where agents start
var Origin = Position{}

// Position is a 0-indexed (row, col) grid coordinate
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Step returns the position one cell away in the given direction.
// The result may lie outside any particular grid.
func (p Position) Step(dir Direction) Position {
	dr, dc := dir.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Neighbors returns the four orthogonal neighbours in scan order, unclipped
func (p Position) Neighbors() []Position {
	dirs := AllDirections()
	out := make([]Position, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, p.Step(d))
	}
	return out
}

// String returns "(row,col)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
