// Package agent implements a greedy explorer that picks moves from percepts
// and its memory of visited cells. It has no lookahead beyond adjacent cells
// and never backtracks.
package agent

import (
	"log/slog"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/percept"
)

// World is the agent's only window on its environment. The agent never sees
// the grid itself.
type World interface {
	PerceptsAt(p world.Position) percept.Set
	Move(from world.Position, dir world.Direction) (percept.Set, error)
	Contains(p world.Position) bool
}

// State of the agent's exploration
type State int

// Agent states
const (
	Exploring State = iota
	GoalReached
)

// String returns the string representation of a state
func (s State) String() string {
	if s == GoalReached {
		return "GoalReached"
	}
	return "Exploring"
}

// ExplorationAgent walks the world one cell per turn
type ExplorationAgent struct {
	world   World
	log     *slog.Logger
	current world.Position
	visited mapset.Set[world.Position]
	hasGold bool
}

// Option configures an ExplorationAgent
type Option func(*ExplorationAgent)

// WithLogger sets the logger used for per-turn decisions
func WithLogger(l *slog.Logger) Option {
	return func(a *ExplorationAgent) {
		if l != nil {
			a.log = l
		}
	}
}

// New creates an agent standing on the origin
func New(w World, opts ...Option) *ExplorationAgent {
	a := &ExplorationAgent{
		world:   w,
		log:     slog.Default(),
		current: world.Origin,
		visited: mapset.New[world.Position](),
	}
	a.visited.Put(a.current)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Position returns the agent's current cell
func (a *ExplorationAgent) Position() world.Position {
	return a.current
}

// HasGold reports whether the gold has been grabbed
func (a *ExplorationAgent) HasGold() bool {
	return a.hasGold
}

// State returns GoalReached once the gold is held, Exploring otherwise
func (a *ExplorationAgent) State() State {
	if a.hasGold {
		return GoalReached
	}
	return Exploring
}

// HasVisited reports whether the agent has stood on p
func (a *ExplorationAgent) HasVisited(p world.Position) bool {
	return a.visited.Has(p)
}

// VisitedCount returns the number of distinct cells visited
func (a *ExplorationAgent) VisitedCount() int {
	return a.visited.Size()
}

// Visited returns the visited cells in row-major order
func (a *ExplorationAgent) Visited() []world.Position {
	out := make([]world.Position, 0, a.visited.Size())
	a.visited.Each(func(p world.Position) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(x, y world.Position) int {
		if x.Row != y.Row {
			return x.Row - y.Row
		}
		return x.Col - y.Col
	})
	return out
}

// Act plays one turn: grab the gold if it glitters here, otherwise step to
// the first safe unvisited neighbour, otherwise the first unvisited
// neighbour at all, otherwise stall.
func (a *ExplorationAgent) Act() Action {
	here := a.world.PerceptsAt(a.current)
	act := Action{From: a.current, Percepts: here}

	if a.hasGold {
		act.Kind = Idle
		return act
	}

	if here.Has(percept.Glitter) {
		a.hasGold = true
		act.Kind = Grab
		a.log.Debug("gold grabbed", "pos", a.current)
		return act
	}

	candidates := a.unvisitedNeighbors()

	for _, dir := range candidates {
		// Peeks at the candidate cell's percepts without moving there.
		if a.world.PerceptsAt(a.current.Step(dir)).IsSafe() {
			return a.moveTo(act, dir, false)
		}
	}

	if len(candidates) > 0 {
		a.log.Debug("no safe move, taking a risk", "pos", a.current)
		return a.moveTo(act, candidates[0], true)
	}

	a.log.Debug("stalled", "pos", a.current)
	act.Kind = Stall
	return act
}

// unvisitedNeighbors returns in-bounds, unvisited directions in scan order
func (a *ExplorationAgent) unvisitedNeighbors() []world.Direction {
	var dirs []world.Direction
	for _, dir := range world.AllDirections() {
		next := a.current.Step(dir)
		if a.world.Contains(next) && !a.visited.Has(next) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func (a *ExplorationAgent) moveTo(act Action, dir world.Direction, risky bool) Action {
	if _, err := a.world.Move(a.current, dir); err != nil {
		a.log.Warn("move blocked", "pos", a.current, "dir", dir, "err", err)
		act.Kind = Stall
		return act
	}

	a.current = a.current.Step(dir)
	a.visited.Put(a.current)

	act.Kind = Move
	act.Direction = dir
	act.To = a.current
	act.Risky = risky
	a.log.Debug("moved", "dir", dir, "to", a.current, "risky", risky)
	return act
}
