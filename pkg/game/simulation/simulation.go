// Package simulation drives one agent through one world for a bounded
// number of turns.
package simulation

import (
	"context"
	"log/slog"
	"math/rand"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/agent"
	"wumpus/pkg/game/config"
	"wumpus/pkg/game/gridworld"
	"wumpus/pkg/game/percept"
)

// DefaultMaxTurns is the turn budget when none is configured
const DefaultMaxTurns = 10

// Record is the diagnostic trace of a single turn
type Record struct {
	Turn     int
	Position world.Position
	Percepts percept.Set
	Action   agent.Action
}

// Result summarises a finished run
type Result struct {
	Seed    int64
	Records []Record
	Found   bool // gold grabbed
	Stalled bool // the last turn was a stall
}

// Turns returns the number of turns played
func (r Result) Turns() int {
	return len(r.Records)
}

// Simulation owns a world and the agent exploring it
type Simulation struct {
	world    *gridworld.GridWorld
	agent    *agent.ExplorationAgent
	seed     int64
	maxTurns int
	turn     int

	log      *slog.Logger
	observer func(Record)
}

// Option configures a Simulation
type Option func(*Simulation)

// WithLogger sets the structured logger for the run and its agent
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver registers a callback invoked after every turn
func WithObserver(fn func(Record)) Option {
	return func(s *Simulation) {
		s.observer = fn
	}
}

// WithMaxTurns overrides the turn budget
func WithMaxTurns(n int) Option {
	return func(s *Simulation) {
		if n > 0 {
			s.maxTurns = n
		}
	}
}

// New builds a random world from cfg, seeded with cfg.Seed, and puts an agent on it
func New(cfg config.Config, opts ...Option) *Simulation {
	s := newSimulation(cfg.MaxTurns, opts)
	s.seed = cfg.Seed

	rng := rand.New(rand.NewSource(cfg.Seed))
	w := gridworld.New(gridworld.Options{
		Size:   cfg.Size,
		Pits:   cfg.Pits,
		Wumpus: cfg.Wumpus,
		Gold:   cfg.Gold,
		Logger: s.log,
	}, rng)
	s.attach(w)
	return s
}

// NewWithWorld runs an agent on a prebuilt world
func NewWithWorld(w *gridworld.GridWorld, opts ...Option) *Simulation {
	s := newSimulation(DefaultMaxTurns, opts)
	s.attach(w)
	return s
}

func newSimulation(maxTurns int, opts []Option) *Simulation {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	s := &Simulation{maxTurns: maxTurns, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulation) attach(w *gridworld.GridWorld) {
	s.world = w
	s.agent = agent.New(w, agent.WithLogger(s.log))
}

// World returns the simulated world
func (s *Simulation) World() *gridworld.GridWorld {
	return s.world
}

// Agent returns the exploring agent
func (s *Simulation) Agent() *agent.ExplorationAgent {
	return s.agent
}

// Turn returns the number of turns played so far
func (s *Simulation) Turn() int {
	return s.turn
}

// Done reports whether the gold is held or the turn budget is spent
func (s *Simulation) Done() bool {
	return s.agent.HasGold() || s.turn >= s.maxTurns
}

// Step plays one turn. It returns false without acting once Done.
func (s *Simulation) Step() (Record, bool) {
	if s.Done() {
		return Record{}, false
	}

	s.turn++
	act := s.agent.Act()
	rec := Record{
		Turn:     s.turn,
		Position: act.From,
		Percepts: act.Percepts,
		Action:   act,
	}

	s.log.Debug("turn",
		"turn", rec.Turn,
		"pos", rec.Position,
		"percepts", rec.Percepts,
		"action", rec.Action)

	if s.observer != nil {
		s.observer(rec)
	}
	return rec, true
}

// Run plays turns until Done or ctx is cancelled
func (s *Simulation) Run(ctx context.Context) (Result, error) {
	res := Result{Seed: s.seed}
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rec, ok := s.Step()
		if !ok {
			break
		}
		res.Records = append(res.Records, rec)
	}

	res.Found = s.agent.HasGold()
	if n := len(res.Records); n > 0 {
		res.Stalled = res.Records[n-1].Action.Kind == agent.Stall
	}

	s.log.Info("episode finished",
		"seed", res.Seed,
		"turns", res.Turns(),
		"found", res.Found,
		"stalled", res.Stalled,
		"visited", s.agent.VisitedCount())
	return res, nil
}

// EpisodeHooks are optional callbacks around each episode of RunEpisodes
type EpisodeHooks struct {
	// Start is called with each fresh simulation before it runs
	Start func(episode int, s *Simulation)
	// End is called once the episode finishes
	End func(episode int, s *Simulation, res Result)
}

// RunEpisodes runs cfg.Episodes independent simulations; episode i (from 1)
// is seeded with cfg.Seed+i-1.
func RunEpisodes(ctx context.Context, cfg config.Config, hooks EpisodeHooks, opts ...Option) ([]Result, error) {
	results := make([]Result, 0, cfg.Episodes)
	for i := 1; i <= cfg.Episodes; i++ {
		ep := cfg
		ep.Seed = cfg.Seed + int64(i-1)

		sim := New(ep, opts...)
		if hooks.Start != nil {
			hooks.Start(i, sim)
		}
		res, err := sim.Run(ctx)
		if err != nil {
			return results, err
		}
		if hooks.End != nil {
			hooks.End(i, sim, res)
		}
		results = append(results, res)
	}
	return results, nil
}
