package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/config"
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/simulation"
)

// recordingRenderer notes which calls run makes, in order
type recordingRenderer struct {
	calls []string
	seeds []int64
	turns int
}

func (r *recordingRenderer) Init() { r.calls = append(r.calls, "init") }

func (r *recordingRenderer) StyleText(text string, _ renderer.TextStyle) string { return text }

func (r *recordingRenderer) FormatText(msg string, args ...any) string { return msg }

func (r *recordingRenderer) RenderEpisode(episode int, seed int64) {
	r.calls = append(r.calls, "episode")
	r.seeds = append(r.seeds, seed)
}

func (r *recordingRenderer) RenderGrid(world.Snapshot, world.Position, []world.Position) {
	r.calls = append(r.calls, "grid")
}

func (r *recordingRenderer) RenderTurn(simulation.Record) { r.turns++ }

func (r *recordingRenderer) RenderResult(simulation.Result) {
	r.calls = append(r.calls, "result")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_RunsEpisodes(t *testing.T) {
	out, err := execute(t, "--seed", "7", "--episodes", "2", "--no-color", "--lang", "en")
	require.NoError(t, err)

	assert.Contains(t, out, "Episode 1 (seed 7)")
	assert.Contains(t, out, "Episode 2 (seed 8)")
	assert.Contains(t, out, "Turn  1  at (0,0)")
	assert.NotContains(t, out, "\x1b[", "no-color output must not carry ANSI codes")
}

func TestRootCmd_RejectsOverfullGrid(t *testing.T) {
	_, err := execute(t, "--size", "2", "--pits", "3", "--no-color")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRootCmd_RejectsHugePitCount(t *testing.T) {
	_, err := execute(t, "--pits", "9223372036854775807", "--no-color", "--seed", "1")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRootCmd_RejectsHugeSize(t *testing.T) {
	_, err := execute(t, "--size", "9223372036854775807", "--no-color")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRootCmd_RejectsNonPositiveTurns(t *testing.T) {
	_, err := execute(t, "--turns", "0", "--no-color")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRun_TurnBudgetBoundsTrace(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 3
	cfg.MaxTurns = 4
	cfg.Color = false

	var out bytes.Buffer
	err := run(context.Background(), cfg, newRenderer(cfg, &out), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	turns := strings.Count(out.String(), "  at (")
	assert.GreaterOrEqual(t, turns, 1)
	assert.LessOrEqual(t, turns, 4)
}

func TestRun_DrivesRendererPerEpisode(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11
	cfg.Episodes = 2
	cfg.MaxTurns = 3

	r := &recordingRenderer{}
	err := run(context.Background(), cfg, r, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"init",
		"episode", "grid", "result", "grid",
		"episode", "grid", "result", "grid",
	}, r.calls)
	assert.Equal(t, []int64{11, 12}, r.seeds)
	assert.GreaterOrEqual(t, r.turns, 2)
	assert.LessOrEqual(t, r.turns, 6)
}
