package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"dungeon/pkg/engine/terminal"
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/messages"
	"dungeon/pkg/game/renderer"
)

// Map characters that only the terminal map uses
const (
	IconPassageH = "─"
	IconPassageV = "│"
	IconOneWayH  = "╌"
	IconOneWayV  = "╎"
	IconStairs   = "↕"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorRoom        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorPassage     color.Style
}

// New creates a new TUI renderer with its colours set up
func New() *TUIRenderer {
	t := &TUIRenderer{}
	t.Init()
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgBlue}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorPassage = color.Style{color.FgGray}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.FormatString(msg, args...)
}

// RenderFrame renders the room header, inventory and the message pane
func (t *TUIRenderer) RenderFrame(w io.Writer, f renderer.Frame) {
	width := terminal.Width(w)

	if f.Title != "" {
		fmt.Fprintln(w, t.colorAction.Sprint(f.Title))
		fmt.Fprintln(w)
	}
	if f.Room != "" {
		fmt.Fprintln(w, t.FormatText("You are in ROOM{%s}", f.Room))
		fmt.Fprintln(w)
	}

	t.printStatusBar(w, f.Inventory)
	t.printMessagesPane(w, width, f.Messages)
}

func (t *TUIRenderer) printStatusBar(w io.Writer, inventory []string) {
	fmt.Fprint(w, t.colorSubtle.Sprint("Inventory: "))
	if len(inventory) == 0 {
		fmt.Fprintln(w, t.colorSubtle.Sprint("(empty)"))
		return
	}
	items := make([]string, 0, len(inventory))
	for _, name := range inventory {
		items = append(items, t.colorItem.Sprint(name))
	}
	fmt.Fprintln(w, strings.Join(items, t.colorSubtle.Sprint(", ")))
}

func (t *TUIRenderer) printMessagesPane(w io.Writer, width int, messages []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, renderer.Rule(width, "Messages"))

	if len(messages) == 0 {
		fmt.Fprintln(w, t.colorSubtle.Sprint("  (no messages)"))
	}
	for _, msg := range messages {
		for _, line := range strings.Split(renderer.Markup(msg), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	fmt.Fprintln(w, t.colorSubtle.Sprint(strings.Repeat("─", max(width, 1))))
}

// RenderMap draws a scene as a character grid, one block per level,
// followed by a legend. Rooms sit on even columns and rows; the cells in
// between carry passages.
func (t *TUIRenderer) RenderMap(scene *renderer.Scene) string {
	var b strings.Builder

	if scene.Title != "" {
		b.WriteString(t.colorAction.Sprint(scene.Title))
		b.WriteString("\n\n")
	}

	if len(scene.Rooms) == 0 {
		b.WriteString(t.colorSubtle.Sprint(messages.Get("MAP_EMPTY")))
		b.WriteString("\n")
		if line := t.unplacedLine(scene); line != "" {
			b.WriteString(line + "\n")
		}
		return b.String()
	}

	for i, band := range scene.Bands {
		if i > 0 {
			b.WriteString("\n")
		}
		if band.Label != "" {
			b.WriteString(t.colorSubtle.Sprint(band.Label))
			b.WriteString("\n")
		}
		for _, row := range t.bandGrid(scene, band.Level) {
			b.WriteString(strings.TrimRight(strings.Join(row, ""), " "))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(t.legend(scene))
	return b.String()
}

func (t *TUIRenderer) bandGrid(scene *renderer.Scene, level int) [][]string {
	rows, cols := scene.Rows*2-1, scene.Columns*2-1
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = renderer.IconVoid
		}
	}

	for _, seg := range scene.Connectors {
		if seg.Vertical || seg.Level != level {
			continue
		}
		t.drawPassage(grid, seg)
	}

	for _, room := range scene.Rooms {
		if room.Level != level {
			continue
		}
		grid[room.Row*2][room.Col*2] = t.roomCell(room)
	}
	return grid
}

// drawPassage fills the cells between two rooms on a straight line.
// Diagonal loop-backs have no straight path and are left out.
func (t *TUIRenderer) drawPassage(grid [][]string, seg renderer.Segment) {
	r1, c1 := seg.FromRow*2, seg.FromCol*2
	r2, c2 := seg.ToRow*2, seg.ToCol*2

	switch {
	case r1 == r2:
		icon := IconPassageH
		if !seg.TwoWay {
			icon = IconOneWayH
		}
		for c := min(c1, c2) + 1; c < max(c1, c2); c++ {
			grid[r1][c] = t.colorPassage.Sprint(icon)
		}
	case c1 == c2:
		icon := IconPassageV
		if !seg.TwoWay {
			icon = IconOneWayV
		}
		for r := min(r1, r2) + 1; r < max(r1, r2); r++ {
			grid[r][c1] = t.colorPassage.Sprint(icon)
		}
	}
}

func (t *TUIRenderer) roomCell(room renderer.RoomGlyph) string {
	switch {
	case room.Current:
		return t.colorPlayer.Sprint(renderer.PlayerIcon)
	case room.Placeholder || !room.Visited:
		if room.Locked {
			return t.colorDenied.Sprint(renderer.IconLocked)
		}
		return t.colorSubtle.Sprint(renderer.IconPlaceholder)
	case room.Dark:
		return t.colorRoom.Sprint(renderer.IconDark)
	default:
		return t.colorRoom.Sprint(room.Glyph)
	}
}

func (t *TUIRenderer) legend(scene *renderer.Scene) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("%s you  %s interior  %s exterior  %s underground",
		t.colorPlayer.Sprint(renderer.PlayerIcon),
		t.colorRoom.Sprint(renderer.CategoryGlyph(world.CategoryInterior)),
		t.colorRoom.Sprint(renderer.CategoryGlyph(world.CategoryExterior)),
		t.colorRoom.Sprint(renderer.CategoryGlyph(world.CategoryUnderground)),
	))
	lines = append(lines, fmt.Sprintf("%s not visited  %s locked  %s dark  %s two-way  %s one-way",
		t.colorSubtle.Sprint(renderer.IconPlaceholder),
		t.colorDenied.Sprint(renderer.IconLocked),
		t.colorRoom.Sprint(renderer.IconDark),
		t.colorPassage.Sprint(IconPassageH),
		t.colorPassage.Sprint(IconOneWayH),
	))

	for _, room := range scene.Rooms {
		label := room.Label
		if room.Current {
			label = t.colorPlayer.Sprint(label)
		}
		lines = append(lines, fmt.Sprintf("  %s %s", t.roomCell(room), label))
	}

	for _, seg := range scene.Connectors {
		if !seg.Vertical {
			continue
		}
		from, _ := scene.Room(seg.From)
		to, _ := scene.Room(seg.To)
		lines = append(lines, fmt.Sprintf("  %s %s %s %s", t.colorPassage.Sprint(IconStairs), from.Label, seg.Direction, to.Label))
	}

	if line := t.unplacedLine(scene); line != "" {
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n") + "\n"
}

func (t *TUIRenderer) unplacedLine(scene *renderer.Scene) string {
	if len(scene.Unplaced) == 0 {
		return ""
	}
	names := make([]string, 0, len(scene.Unplaced))
	for _, id := range scene.Unplaced {
		names = append(names, string(id))
	}
	return t.colorDenied.Sprint("  " + messages.Get("MAP_UNPLACED", strings.Join(names, ", ")))
}

var _ renderer.Renderer = (*TUIRenderer)(nil)
