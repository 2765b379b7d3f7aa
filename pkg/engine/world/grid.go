package world

import (
	"slices"
	"strings"
)

// Grid is a square matrix of cell markers
type Grid struct {
	cells []Marker
	size  int
}

// NewGrid creates an empty size×size grid
func NewGrid(size int) *Grid {
	g := &Grid{}
	g.Build(size)
	return g
}

// Build initializes the grid with the given dimensions, every cell Empty
func (g *Grid) Build(size int) {
	if size <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.size = size
	g.cells = make([]Marker, size*size)
}

// Size returns the number of rows (and columns) in the grid
func (g *Grid) Size() int {
	return g.size
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// At returns the marker at the given position, or Empty if out of bounds
func (g *Grid) At(p Position) Marker {
	if !g.IsValidPosition(p) {
		return Empty
	}
	return g.cells[p.Row*g.size+p.Col]
}

// Set places a marker at the given position. Returns false if out of bounds.
func (g *Grid) Set(p Position, m Marker) bool {
	if !g.IsValidPosition(p) {
		return false
	}
	g.cells[p.Row*g.size+p.Col] = m
	return true
}

// GetCellRelative returns the position adjacent to p in the given direction,
// and whether it lies inside the grid
func (g *Grid) GetCellRelative(p Position, dir Direction) (Position, bool) {
	if !dir.IsValid() {
		return p, false
	}
	next := p.Step(dir)
	return next, g.IsValidPosition(next)
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(p Position, m Marker)) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			fn(Position{Row: row, Col: col}, g.cells[row*g.size+col])
		}
	}
}

// Count returns how many cells hold the given marker
func (g *Grid) Count(m Marker) int {
	n := 0
	for _, c := range g.cells {
		if c == m {
			n++
		}
	}
	return n
}

// Snapshot returns an immutable copy of the grid
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{cells: slices.Clone(g.cells), size: g.size}
}

// Snapshot is a read-only copy of a grid, used for diagnostic display
type Snapshot struct {
	cells []Marker
	size  int
}

// Size returns the number of rows (and columns) in the snapshot
func (s Snapshot) Size() int {
	return s.size
}

// At returns the marker at the given position, or Empty if out of bounds
func (s Snapshot) At(p Position) Marker {
	if p.Row < 0 || p.Row >= s.size || p.Col < 0 || p.Col >= s.size {
		return Empty
	}
	return s.cells[p.Row*s.size+p.Col]
}

// Rows returns a fresh row-major copy of the markers
func (s Snapshot) Rows() [][]Marker {
	rows := make([][]Marker, s.size)
	for r := range rows {
		rows[r] = slices.Clone(s.cells[r*s.size : (r+1)*s.size])
	}
	return rows
}

// Equal reports whether two snapshots hold the same markers
func (s Snapshot) Equal(other Snapshot) bool {
	return s.size == other.size && slices.Equal(s.cells, other.cells)
}

// String renders the snapshot one row per line using marker symbols
func (s Snapshot) String() string {
	var b strings.Builder
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			b.WriteRune(s.cells[r*s.size+c].Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
