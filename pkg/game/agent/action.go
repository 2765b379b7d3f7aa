package agent

import (
	"fmt"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/percept"
)

// Kind is what the agent did on a turn
type Kind int

// Action kinds
const (
	// Grab picks up the gold in the current cell
	Grab Kind = iota
	// Move steps to an adjacent cell
	Move
	// Stall means no unvisited neighbour was left
	Stall
	// Idle is returned once the goal has been reached
	Idle
)

// String returns the string representation of an action kind
func (k Kind) String() string {
	switch k {
	case Grab:
		return "Grab"
	case Move:
		return "Move"
	case Stall:
		return "Stall"
	case Idle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Action is the outcome of a single Act call
type Action struct {
	Kind Kind

	// From is the cell the agent acted in, Percepts what it sensed there
	From     world.Position
	Percepts percept.Set

	// Move only
	Direction world.Direction
	To        world.Position
	Risky     bool
}

// String returns a compact description, e.g. "Move Down (risk)"
func (a Action) String() string {
	if a.Kind != Move {
		return a.Kind.String()
	}
	if a.Risky {
		return fmt.Sprintf("Move %s (risk)", a.Direction)
	}
	return fmt.Sprintf("Move %s", a.Direction)
}
