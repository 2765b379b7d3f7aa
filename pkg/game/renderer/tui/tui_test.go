package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/agent"
	"wumpus/pkg/game/percept"
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/simulation"
)

var _ renderer.Renderer = (*TUIRenderer)(nil)

func newPlain(t *testing.T, width int) (*TUIRenderer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r := New(&buf, WithPlain(), WithWidth(func() int { return width }))
	r.Init()
	return r, &buf
}

func classicSnapshot() world.Snapshot {
	g := world.NewGrid(4)
	g.Set(world.Pos(1, 1), world.Wumpus)
	g.Set(world.Pos(0, 2), world.Pit)
	g.Set(world.Pos(2, 0), world.Pit)
	g.Set(world.Pos(3, 3), world.Pit)
	g.Set(world.Pos(2, 2), world.Gold)
	return g.Snapshot()
}

func TestRenderGrid_Plain(t *testing.T) {
	r, buf := newPlain(t, 7)
	r.RenderGrid(classicSnapshot(), world.Pos(1, 0), []world.Position{world.Origin, world.Pos(1, 0)})

	want := "○ ● O ●\n" +
		"@ W ● ●\n" +
		"O ● $ ●\n" +
		"● ● ● O\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderGrid_CentersOnWideTerminal(t *testing.T) {
	r, buf := newPlain(t, 17)
	r.RenderGrid(classicSnapshot(), world.Origin, nil)
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Equal(t, "     @ ● O ●", first)
}

func TestRenderTurn_MoveWithRisk(t *testing.T) {
	r, buf := newPlain(t, 80)
	r.RenderTurn(simulation.Record{
		Turn:     1,
		Position: world.Origin,
		Percepts: percept.NewSet(),
		Action: agent.Action{
			Kind:      agent.Move,
			From:      world.Origin,
			Direction: world.Down,
			To:        world.Pos(1, 0),
			Risky:     true,
		},
	})
	assert.Equal(t, "Turn  1  at (0,0)  percepts: {}  -> Move Down (1,0) (calculated risk)\n", buf.String())
}

func TestRenderTurn_Kinds(t *testing.T) {
	cases := []struct {
		name     string
		percepts percept.Set
		action   agent.Action
		want     string
	}{
		{"grab", percept.NewSet(percept.Glitter), agent.Action{Kind: agent.Grab}, "{Glitter}  -> Grab gold"},
		{"stall", percept.NewSet(percept.Breeze, percept.Stench), agent.Action{Kind: agent.Stall}, "{Stench, Breeze}  -> Stall"},
		{"safe move", percept.NewSet(percept.Breeze), agent.Action{Kind: agent.Move, Direction: world.Right, To: world.Pos(3, 1)}, "{Breeze}  -> Move Right (3,1)\n"},
		{"idle", percept.NewSet(percept.Glitter), agent.Action{Kind: agent.Idle}, "-> Idle"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, buf := newPlain(t, 80)
			r.RenderTurn(simulation.Record{Turn: 4, Position: world.Pos(3, 0), Percepts: c.percepts, Action: c.action})
			assert.Contains(t, buf.String(), "Turn  4  at (3,0)")
			assert.Contains(t, buf.String(), c.want)
		})
	}
}

func TestRenderResult(t *testing.T) {
	recs := make([]simulation.Record, 7)
	cases := []struct {
		name string
		res  simulation.Result
		want string
	}{
		{"found", simulation.Result{Records: recs, Found: true}, "Gold found after 7 turns."},
		{"stalled", simulation.Result{Records: recs, Stalled: true}, "Agent stalled after 7 turns without finding gold."},
		{"budget", simulation.Result{Records: recs}, "Turn budget of 7 exhausted without finding gold."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, buf := newPlain(t, 80)
			r.RenderResult(c.res)
			assert.Equal(t, "\n"+c.want+"\n\n", buf.String())
		})
	}
}

func TestRenderEpisode(t *testing.T) {
	r, buf := newPlain(t, 80)
	r.RenderEpisode(2, 43)
	assert.Equal(t, "Episode 2 (seed 43)\n\n", buf.String())
}

func TestFormatText_UnknownFunction(t *testing.T) {
	r, _ := newPlain(t, 80)
	assert.Equal(t, "ERROR, function not found: NOPE -> x", r.FormatText("NOPE{x}"))
	assert.Equal(t, "plain {} braces", r.FormatText("plain {} braces"))
}

func TestSplitFirstRune(t *testing.T) {
	cases := []struct {
		in, head, rest string
	}{
		{"Move Down", "M", "ove Down"},
		{"Ávanzar Abajo", "Á", "vanzar Abajo"},
		{"走る", "走", "る"},
		{"", "", ""},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			head, rest := splitFirstRune(c.in)
			assert.Equal(t, c.head, head)
			assert.Equal(t, c.rest, rest)
			assert.True(t, utf8.ValidString(head))
			assert.True(t, utf8.ValidString(rest))
		})
	}
}

func TestFormatText_ActionKeepsMultibyteInitial(t *testing.T) {
	r, _ := newPlain(t, 80)
	assert.Equal(t, "Ávanzar Abajo", r.FormatText("ACTION{%s}", "Ávanzar Abajo"))

	var buf bytes.Buffer
	colored := New(&buf)
	colored.Init()
	out := colored.FormatText("ACTION{%s}", "Ávanzar Abajo")
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "Ávanzar Abajo", color.ClearCode(out))
}

func TestStyleText_ColoredWrapsPlainText(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Init()
	styled := r.StyleText("Breeze", renderer.StyleWarning)
	assert.Equal(t, "Breeze", color.ClearCode(styled))
	assert.Equal(t, "x", r.StyleText("x", renderer.StyleNormal))
}

func TestInit_LoadsCatalogue(t *testing.T) {
	dir := t.TempDir()
	msgDir := filepath.Join(dir, "es", "LC_MESSAGES")
	require.NoError(t, os.MkdirAll(msgDir, 0o755))
	po := `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Language: es\n"

msgid "Turn"
msgstr "Turno"

msgid "Stall"
msgstr "Atascado"
`
	require.NoError(t, os.WriteFile(filepath.Join(msgDir, Domain+".po"), []byte(po), 0o644))
	t.Cleanup(func() { gotext.Configure(filepath.Join(os.TempDir(), "no-such-locales"), "en", Domain) })

	var buf bytes.Buffer
	r := New(&buf, WithPlain(), WithWidth(func() int { return 80 }), WithLocale(dir, "es"))
	r.Init()
	r.RenderTurn(simulation.Record{Turn: 3, Position: world.Pos(0, 1), Action: agent.Action{Kind: agent.Stall}})
	assert.Contains(t, buf.String(), "Turno  3")
	assert.Contains(t, buf.String(), "-> Atascado")
}
