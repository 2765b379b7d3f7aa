// Package gridworld owns the hazard layout of a wumpus world and answers
// percept and movement queries against it.
package gridworld

import (
	"errors"
	"log/slog"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/percept"
)

// ErrOutOfBounds is returned by Move when the target lies outside the grid.
// It is the "blocked" result: no state changes.
var ErrOutOfBounds = errors.New("move target out of bounds")

// Rand is the random source used for placement. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Options configure world construction
type Options struct {
	Size   int
	Pits   int
	Wumpus int
	Gold   int

	Logger *slog.Logger
}

// DefaultOptions returns the classic 4×4 world with 3 pits, one wumpus and one gold
func DefaultOptions() Options {
	return Options{Size: 4, Pits: 3, Wumpus: 1, Gold: 1}
}

// GridWorld holds the static hazard layout and the authoritative agent position
type GridWorld struct {
	grid  *world.Grid
	agent world.Position
	log   *slog.Logger
}

// New builds a world, placing wumpus markers, then pits, then gold, each on a
// uniformly drawn cell that is neither the origin nor already occupied.
// Marker counts above the free cell count (size*size-1) never terminate;
// callers validate configuration before getting here.
func New(opts Options, rng Rand) *GridWorld {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	w := &GridWorld{
		grid:  world.NewGrid(opts.Size),
		agent: world.Origin,
		log:   log,
	}

	p := newPlacer(w.grid, rng, log)
	p.place(world.Wumpus, opts.Wumpus)
	p.place(world.Pit, opts.Pits)
	p.place(world.Gold, opts.Gold)

	log.Debug("world built",
		"size", opts.Size,
		"pits", opts.Pits,
		"wumpus", opts.Wumpus,
		"gold", opts.Gold,
		"rejections", p.rejections)

	return w
}

// FromGrid wraps a hand-built layout. The grid is copied, so later changes
// to it do not leak into the world.
func FromGrid(grid *world.Grid) *GridWorld {
	g := world.NewGrid(grid.Size())
	grid.ForEachCell(func(p world.Position, m world.Marker) {
		g.Set(p, m)
	})
	return &GridWorld{grid: g, agent: world.Origin, log: slog.Default()}
}

// Size returns the grid dimension
func (w *GridWorld) Size() int {
	return w.grid.Size()
}

// Contains reports whether p lies inside the grid
func (w *GridWorld) Contains(p world.Position) bool {
	return w.grid.IsValidPosition(p)
}

// AgentPosition returns where the world believes the agent is
func (w *GridWorld) AgentPosition() world.Position {
	return w.agent
}

// PerceptsAt computes the percepts an agent would receive standing at p.
// Glitter when p holds gold; Stench and Breeze when an orthogonal in-bounds
// neighbour holds a wumpus or a pit.
func (w *GridWorld) PerceptsAt(p world.Position) percept.Set {
	var s percept.Set
	if w.grid.At(p) == world.Gold {
		s = s.With(percept.Glitter)
	}

	for _, dir := range world.AllDirections() {
		n, ok := w.grid.GetCellRelative(p, dir)
		if !ok {
			continue
		}
		switch w.grid.At(n) {
		case world.Wumpus:
			s = s.With(percept.Stench)
		case world.Pit:
			s = s.With(percept.Breeze)
		}
	}
	return s
}

// Move advances the agent from one cell in the given direction and returns
// the percepts at the target. ErrOutOfBounds leaves the position untouched.
func (w *GridWorld) Move(from world.Position, dir world.Direction) (percept.Set, error) {
	target, ok := w.grid.GetCellRelative(from, dir)
	if !ok {
		return 0, ErrOutOfBounds
	}
	w.agent = target
	return w.PerceptsAt(target), nil
}

// Render returns an immutable copy of the layout for diagnostic display
func (w *GridWorld) Render() world.Snapshot {
	return w.grid.Snapshot()
}
