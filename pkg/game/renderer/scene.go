package renderer

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"dungeon/pkg/engine/layout"
	"dungeon/pkg/engine/world"
)

// Scene defaults, in pixels
const (
	DefaultCellSize = 48
	DefaultGap      = 32
	DefaultMargin   = 24

	titleHeight = 28
	labelHeight = 20
)

// categoryGlyphs stand in for a theme icon when the theme has none
var categoryGlyphs = map[world.Category]string{
	world.CategoryInterior:    "□",
	world.CategoryIndoor:      "□",
	world.CategoryExterior:    "♣",
	world.CategoryOutdoor:     "♣",
	world.CategoryUnderground: "▼",
}

// CategoryGlyph returns the map glyph of a theme category
func CategoryGlyph(c world.Category) string {
	if g, ok := categoryGlyphs[c]; ok {
		return g
	}
	return categoryGlyphs[world.CategoryInterior]
}

// SceneOptions tune BuildScene. Zero sizes use the defaults.
type SceneOptions struct {
	Current  world.RoomID
	Title    string
	CellSize int
	Gap      int
	Margin   int
}

func (o SceneOptions) withDefaults() SceneOptions {
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Gap <= 0 {
		o.Gap = DefaultGap
	}
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	return o
}

// RoomGlyph is one room drawn on the map
type RoomGlyph struct {
	Room  world.RoomID
	Label string
	Level int

	// X, Y are the pixel position of the top-left corner
	X, Y int
	Size int

	// Col, Row are the grid position inside the room's band, north up
	Col, Row int

	Theme    string
	Category world.Category
	Icon     string
	Glyph    string

	Visited     bool
	Placeholder bool
	Current     bool
	Locked      bool
	Dark        bool
}

// CenterX returns the horizontal pixel centre of the glyph
func (r RoomGlyph) CenterX() int { return r.X + r.Size/2 }

// CenterY returns the vertical pixel centre of the glyph
func (r RoomGlyph) CenterY() int { return r.Y + r.Size/2 }

// Segment is a drawn connector. A reciprocal pair of connections is drawn
// as one two-way segment.
type Segment struct {
	From, To  world.RoomID
	Direction world.Direction

	X1, Y1, X2, Y2 int

	FromCol, FromRow int
	ToCol, ToRow     int
	Level            int

	TwoWay   bool
	LoopBack bool

	// Vertical segments join rooms on different levels
	Vertical bool
}

// Band is the strip of the canvas holding one level
type Band struct {
	Level  int
	Label  string
	Y      int
	Height int
}

// Scene is a map ready to draw: every position is resolved and the canvas
// is sized to the content.
type Scene struct {
	Title         string
	Width, Height int

	// Columns and Rows size the grid of each band
	Columns, Rows         int
	CellSize, Gap, Margin int

	Bands      []Band
	Rooms      []RoomGlyph
	Connectors []Segment
	Unplaced   []world.RoomID
}

// BuildScene turns a layout into a scene. Levels become horizontal bands,
// highest level on top. Output depends only on its inputs.
func BuildScene(lay *layout.Result, g *world.Graph, visited mapset.Set[world.RoomID], opts SceneOptions) *Scene {
	opts = opts.withDefaults()
	pitch := opts.CellSize + opts.Gap

	scene := &Scene{
		Title:    opts.Title,
		CellSize: opts.CellSize,
		Gap:      opts.Gap,
		Margin:   opts.Margin,
		Unplaced: append([]world.RoomID(nil), lay.Unplaced...),
	}

	top := opts.Margin
	if scene.Title != "" {
		top += titleHeight
	}

	if lay.Empty() {
		scene.Width = 2 * opts.Margin
		scene.Height = top + opts.Margin
		return scene
	}

	minX, minY, maxX, maxY := lay.Bounds()
	scene.Columns = maxX - minX + 1
	scene.Rows = maxY - minY + 1

	levels := lay.Levels()
	label := 0
	if len(levels) > 1 {
		label = labelHeight
	}
	content := scene.Rows*pitch - opts.Gap
	bandHeight := label + content

	bandTop := make(map[int]int, len(levels))
	for i, level := range levels {
		y := top + i*(bandHeight+opts.Gap)
		bandTop[level] = y
		b := Band{Level: level, Y: y, Height: bandHeight}
		if label > 0 {
			b.Label = LevelName(level)
		}
		scene.Bands = append(scene.Bands, b)
	}

	scene.Width = 2*opts.Margin + scene.Columns*pitch - opts.Gap
	scene.Height = top + len(levels)*bandHeight + (len(levels)-1)*opts.Gap + opts.Margin

	index := make(map[world.RoomID]int, len(lay.Order))
	for _, id := range lay.Order {
		cell := lay.Cells[id]
		room, _ := g.Room(id)
		theme := g.RoomTheme(id)

		glyph := RoomGlyph{
			Room:        id,
			Label:       g.RoomName(id),
			Level:       cell.Level,
			Col:         cell.X - minX,
			Row:         maxY - cell.Y,
			Size:        opts.CellSize,
			Theme:       theme.Name,
			Category:    theme.Category,
			Icon:        theme.Icon,
			Glyph:       CategoryGlyph(theme.Category),
			Visited:     cell.Visited || visited.Has(id),
			Placeholder: cell.Placeholder,
			Current:     id == opts.Current,
		}
		if room != nil {
			glyph.Locked = room.IsLocked
			glyph.Dark = room.IsDark
		}
		glyph.X = opts.Margin + glyph.Col*pitch
		glyph.Y = bandTop[cell.Level] + label + glyph.Row*pitch

		index[id] = len(scene.Rooms)
		scene.Rooms = append(scene.Rooms, glyph)
	}

	drawn := make(map[[2]world.RoomID]int)
	for _, c := range lay.Connectors {
		if i, ok := drawn[[2]world.RoomID{c.To, c.From}]; ok && c.Reciprocal {
			scene.Connectors[i].TwoWay = true
			continue
		}
		from, to := scene.Rooms[index[c.From]], scene.Rooms[index[c.To]]
		seg := Segment{
			From:      c.From,
			To:        c.To,
			Direction: c.Direction,
			X1:        from.CenterX(),
			Y1:        from.CenterY(),
			X2:        to.CenterX(),
			Y2:        to.CenterY(),
			FromCol:   from.Col,
			FromRow:   from.Row,
			ToCol:     to.Col,
			ToRow:     to.Row,
			Level:     from.Level,
			LoopBack:  c.LoopBack,
			Vertical:  from.Level != to.Level,
		}
		drawn[[2]world.RoomID{c.From, c.To}] = len(scene.Connectors)
		scene.Connectors = append(scene.Connectors, seg)
	}

	return scene
}

// Room returns the glyph drawn for a room
func (s *Scene) Room(id world.RoomID) (RoomGlyph, bool) {
	for _, r := range s.Rooms {
		if r.Room == id {
			return r, true
		}
	}
	return RoomGlyph{}, false
}

// LevelName labels a level band
func LevelName(level int) string {
	switch {
	case level == 0:
		return "Ground level"
	case level > 0:
		return fmt.Sprintf("Level +%d", level)
	default:
		return fmt.Sprintf("Level %d", level)
	}
}
