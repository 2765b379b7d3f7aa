package gridworld

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"wumpus/pkg/engine/world"
)

// placer drops markers on random free cells. The origin is reserved for the agent.
type placer struct {
	grid     *world.Grid
	rng      Rand
	log      *slog.Logger
	occupied mapset.Set[world.Position]

	rejections int
}

func newPlacer(grid *world.Grid, rng Rand, log *slog.Logger) *placer {
	occupied := mapset.New[world.Position]()
	occupied.Put(world.Origin)
	return &placer{grid: grid, rng: rng, log: log, occupied: occupied}
}

// place puts count markers of kind m, retrying on collisions
func (p *placer) place(m world.Marker, count int) {
	size := p.grid.Size()
	for count > 0 {
		pos := world.Pos(p.rng.Intn(size), p.rng.Intn(size))
		if p.occupied.Has(pos) {
			p.rejections++
			p.log.Debug("placement rejected", "marker", m, "pos", pos)
			continue
		}
		p.grid.Set(pos, m)
		p.occupied.Put(pos)
		count--
	}
}
