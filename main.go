package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"wumpus/pkg/engine/terminal"
	"wumpus/pkg/game/config"
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/renderer/tui"
	"wumpus/pkg/game/simulation"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cfg, loadErr := config.Load()

	var noColor, verbose bool

	cmd := &cobra.Command{
		Use:          "wumpus",
		Short:        "Run a greedy agent through a random wumpus world",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			if noColor || (cmd.OutOrStdout() == os.Stdout && !terminal.IsTerminal()) {
				cfg.Color = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			r := newRenderer(cfg, cmd.OutOrStdout())
			return run(cmd.Context(), cfg, r, newLogger(cmd.ErrOrStderr(), verbose))
		},
	}

	cmd.Flags().IntVar(&cfg.Size, "size", cfg.Size, "grid size (size x size)")
	cmd.Flags().IntVar(&cfg.Pits, "pits", cfg.Pits, "number of pits")
	cmd.Flags().IntVar(&cfg.Wumpus, "wumpus", cfg.Wumpus, "number of wumpus markers")
	cmd.Flags().IntVar(&cfg.Gold, "gold", cfg.Gold, "number of gold markers")
	cmd.Flags().IntVar(&cfg.MaxTurns, "turns", cfg.MaxTurns, "turn budget per episode")
	cmd.Flags().IntVar(&cfg.Episodes, "episodes", cfg.Episodes, "independent episodes to run")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "placement seed (episode i, from 1, uses seed+i-1)")
	cmd.Flags().StringVar(&cfg.Lang, "lang", cfg.Lang, "message language")
	cmd.Flags().StringVar(&cfg.LocalesDir, "locales", cfg.LocalesDir, "directory holding <lang>/LC_MESSAGES/default.po")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log agent decisions to stderr")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRenderer(cfg config.Config, out io.Writer) renderer.Renderer {
	opts := []tui.Option{tui.WithLocale(cfg.LocalesDir, cfg.Lang)}
	if !cfg.Color {
		opts = append(opts, tui.WithPlain())
	}
	return tui.New(out, opts...)
}

func run(ctx context.Context, cfg config.Config, r renderer.Renderer, log *slog.Logger) error {
	r.Init()

	_, err := simulation.RunEpisodes(ctx, cfg, simulation.EpisodeHooks{
		Start: func(episode int, sim *simulation.Simulation) {
			r.RenderEpisode(episode, cfg.Seed+int64(episode-1))
			r.RenderGrid(sim.World().Render(), sim.Agent().Position(), sim.Agent().Visited())
		},
		End: func(episode int, sim *simulation.Simulation, res simulation.Result) {
			r.RenderResult(res)
			r.RenderGrid(sim.World().Render(), sim.Agent().Position(), sim.Agent().Visited())
		},
	}, simulation.WithLogger(log), simulation.WithObserver(r.RenderTurn))
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}
