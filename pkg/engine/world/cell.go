// Package world provides square grid primitives for tile-based simulations:
// positions, directions, cell markers and the grid that holds them.
package world

// Marker is the content of a single grid cell
type Marker int

// Marker constants
const (
	Empty Marker = iota
	Pit
	Wumpus
	Gold
)

// AllMarkers returns every marker, Empty first
func AllMarkers() []Marker {
	return []Marker{Empty, Pit, Wumpus, Gold}
}

// String returns the string representation of a marker
func (m Marker) String() string {
	switch m {
	case Empty:
		return "Empty"
	case Pit:
		return "Pit"
	case Wumpus:
		return "Wumpus"
	case Gold:
		return "Gold"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-character map symbol for the marker
func (m Marker) Symbol() rune {
	switch m {
	case Pit:
		return 'P'
	case Wumpus:
		return 'W'
	case Gold:
		return 'G'
	default:
		return '.'
	}
}

// IsHazard returns true for markers that produce warning percepts in neighbours
func (m Marker) IsHazard() bool {
	return m == Pit || m == Wumpus
}
