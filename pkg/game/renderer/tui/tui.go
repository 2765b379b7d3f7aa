package tui

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"wumpus/pkg/engine/terminal"
	"wumpus/pkg/engine/world"
	"wumpus/pkg/game/agent"
	"wumpus/pkg/game/percept"
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/simulation"
)

// Icon constants for the grid display
const (
	IconAgent     = "@"
	IconWumpus    = "W"
	IconPit       = "O"
	IconGold      = "$"
	IconVisited   = "○"
	IconUnvisited = "●"
)

// Domain is the gotext catalogue name, loaded from <locales>/<lang>/LC_MESSAGES/default.po
const Domain = "default"

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet,
// since keys come from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	plain bool
	width func() int

	localesDir string
	lang       string

	colorHeader      color.Style
	colorPosition    color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorRisk        color.Style
	colorStall       color.Style
	colorGold        color.Style
	colorHazard      color.Style
	colorWarning     color.Style
	colorSubtle      color.Style
	colorAgent       color.Style

	regexpStringFunctions *regexp.Regexp
}

// Option configures a TUIRenderer
type Option func(*TUIRenderer)

// WithPlain disables ANSI colors
func WithPlain() Option {
	return func(t *TUIRenderer) { t.plain = true }
}

// WithLocale loads the message catalogue for lang from dir on Init
func WithLocale(dir, lang string) Option {
	return func(t *TUIRenderer) {
		t.localesDir = dir
		t.lang = lang
	}
}

// WithWidth overrides the terminal width used to center the grid
func WithWidth(fn func() int) Option {
	return func(t *TUIRenderer) { t.width = fn }
}

// New creates a new TUI renderer writing to out
func New(out io.Writer, opts ...Option) *TUIRenderer {
	t := &TUIRenderer{out: out, width: terminal.Width}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init initializes the TUI renderer (colors, catalogue)
func (t *TUIRenderer) Init() {
	t.colorHeader = color.Style{color.FgCyan, color.OpBold}
	t.colorPosition = color.Style{color.FgBlue}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorRisk = color.Style{color.FgYellow, color.OpBold}
	t.colorStall = color.Style{color.FgRed, color.OpBold}
	t.colorGold = color.Style{color.FgYellow}
	t.colorHazard = color.Style{color.FgRed}
	t.colorWarning = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorAgent = color.Style{color.FgGreen, color.BgBlack, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z]+){([^{}]+)}`)

	if t.localesDir != "" && t.lang != "" {
		gotext.Configure(t.localesDir, t.lang, Domain)
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.plain {
		return text
	}
	switch style {
	case renderer.StyleHeader:
		return t.colorHeader.Sprint(text)
	case renderer.StylePosition:
		return t.colorPosition.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleRisk:
		return t.colorRisk.Sprint(text)
	case renderer.StyleStall:
		return t.colorStall.Sprint(text)
	case renderer.StyleGold:
		return t.colorGold.Sprint(text)
	case renderer.StyleHazard:
		return t.colorHazard.Sprint(text)
	case renderer.StyleWarning:
		return t.colorWarning.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleAgent:
		return t.colorAgent.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system:
// GT{key} translates, POS{..} ACTION{..} GOLD{..} RISK{..} STALL{..} style.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "POS":
			val = t.StyleText(operand, renderer.StylePosition)
		case "ACTION":
			head, rest := splitFirstRune(operand)
			val = t.StyleText(head, renderer.StyleActionShort) + t.StyleText(rest, renderer.StyleAction)
		case "GOLD":
			val = t.StyleText(dynamicGet(operand), renderer.StyleGold)
		case "RISK":
			val = t.StyleText(dynamicGet(operand), renderer.StyleRisk)
		case "STALL":
			val = t.StyleText(dynamicGet(operand), renderer.StyleStall)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// splitFirstRune splits s after its first rune
func splitFirstRune(s string) (string, string) {
	_, n := utf8.DecodeRuneInString(s)
	return s[:n], s[n:]
}

// RenderEpisode announces the start of an episode
func (t *TUIRenderer) RenderEpisode(episode int, seed int64) {
	header := gotext.Get("Episode %d (seed %d)", episode, seed)
	fmt.Fprintf(t.out, "%s\n\n", t.StyleText(header, renderer.StyleHeader))
}

// RenderGrid draws the layout centered on the terminal, one row per line
func (t *TUIRenderer) RenderGrid(snap world.Snapshot, agentPos world.Position, visited []world.Position) {
	seen := mapset.New[world.Position]()
	for _, p := range visited {
		seen.Put(p)
	}

	margin := strings.Repeat(" ", terminal.Margin(t.width(), snap.Size()*2-1))

	for r, row := range snap.Rows() {
		icons := make([]string, len(row))
		for c, m := range row {
			icons[c] = t.renderCell(world.Pos(r, c), m, agentPos, seen)
		}
		fmt.Fprintf(t.out, "%s%s\n", margin, strings.Join(icons, " "))
	}
	fmt.Fprintln(t.out)
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(p world.Position, m world.Marker, agentPos world.Position, seen mapset.Set[world.Position]) string {
	if p == agentPos {
		return t.StyleText(IconAgent, renderer.StyleAgent)
	}

	switch m {
	case world.Wumpus:
		return t.StyleText(IconWumpus, renderer.StyleHazard)
	case world.Pit:
		return t.StyleText(IconPit, renderer.StyleHazard)
	case world.Gold:
		return t.StyleText(IconGold, renderer.StyleGold)
	}

	if seen.Has(p) {
		return t.StyleText(IconVisited, renderer.StyleSubtle)
	}
	return t.StyleText(IconUnvisited, renderer.StyleSubtle)
}

// RenderTurn prints one turn: number, position, percepts and the action taken
func (t *TUIRenderer) RenderTurn(rec simulation.Record) {
	head := t.FormatText("GT{Turn} %2d  GT{at} POS{%s}", rec.Turn, rec.Position)
	fmt.Fprintf(t.out, "%s  %s: %s  -> %s\n",
		head,
		gotext.Get("percepts"),
		t.perceptList(rec.Percepts),
		t.actionText(rec.Action))
}

// perceptList renders a percept set as "{Stench, Breeze}"
func (t *TUIRenderer) perceptList(s percept.Set) string {
	names := make([]string, 0, 3)
	s.Each(func(p percept.Percept) {
		name := dynamicGet(p.String())
		if p == percept.Glitter {
			names = append(names, t.StyleText(name, renderer.StyleGold))
		} else {
			names = append(names, t.StyleText(name, renderer.StyleWarning))
		}
	})
	return "{" + strings.Join(names, ", ") + "}"
}

// actionText renders what the agent did
func (t *TUIRenderer) actionText(a agent.Action) string {
	switch a.Kind {
	case agent.Grab:
		return t.FormatText("GOLD{Grab gold}")
	case agent.Move:
		dir := dynamicGet(a.Direction.String())
		txt := t.FormatText("ACTION{%s} POS{%s}", gotext.Get("Move %s", dir), a.To)
		if a.Risky {
			txt += " " + t.FormatText("RISK{(calculated risk)}")
		}
		return txt
	case agent.Stall:
		return t.FormatText("STALL{Stall}")
	default:
		return t.StyleText(gotext.Get("Idle"), renderer.StyleSubtle)
	}
}

// RenderResult prints the outcome of an episode
func (t *TUIRenderer) RenderResult(res simulation.Result) {
	var msg string
	switch {
	case res.Found:
		msg = t.StyleText(gotext.Get("Gold found after %d turns.", res.Turns()), renderer.StyleGold)
	case res.Stalled:
		msg = t.StyleText(gotext.Get("Agent stalled after %d turns without finding gold.", res.Turns()), renderer.StyleStall)
	default:
		msg = t.StyleText(gotext.Get("Turn budget of %d exhausted without finding gold.", res.Turns()), renderer.StyleWarning)
	}
	fmt.Fprintf(t.out, "\n%s\n\n", msg)
}
