// Package renderer defines how simulation traces are presented.
package renderer

import (
	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/simulation"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHeader
	StylePosition
	StyleAction
	StyleActionShort
	StyleRisk
	StyleStall
	StyleGold
	StyleHazard
	StyleWarning
	StyleSubtle
	StyleAgent
)

// Renderer defines the interface for diagnostic output backends
type Renderer interface {
	// Init initializes the renderer (colors, catalogues, etc.)
	Init()

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// RenderEpisode announces the start of an episode
	RenderEpisode(episode int, seed int64)

	// RenderGrid draws the hazard layout with the agent and visited cells overlaid
	RenderGrid(snap world.Snapshot, agentPos world.Position, visited []world.Position)

	// RenderTurn prints one turn record: position, percepts, action
	RenderTurn(rec simulation.Record)

	// RenderResult prints the outcome of an episode
	RenderResult(res simulation.Result)
}
