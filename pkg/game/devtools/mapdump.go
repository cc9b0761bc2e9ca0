// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeon/pkg/engine/layout"
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/renderer"
	"dungeon/pkg/game/session"
)

// DefaultMapDumpFile is used when no path is given
const DefaultMapDumpFile = "map.txt"

// cellSymbol returns the single-character symbol for a placed room
func cellSymbol(g *world.Graph, cell layout.Cell, current world.RoomID) rune {
	if cell.Room == current {
		return '@'
	}
	room, ok := g.Room(cell.Room)
	switch {
	case cell.Placeholder:
		return '?'
	case !ok:
		return '#'
	case room.IsLocked:
		return 'L'
	case room.IsDark:
		return 'd'
	default:
		return '.'
	}
}

// writeMapGrid writes one level of the layout, north up
func writeMapGrid(w io.Writer, g *world.Graph, lay *layout.Result, level int, current world.RoomID) {
	minX, minY, maxX, maxY := lay.Bounds()
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			room, ok := lay.At(layout.Point{X: x, Y: y, Level: level})
			if !ok {
				fmt.Fprint(w, " ")
				continue
			}
			fmt.Fprintf(w, "%c", cellSymbol(g, lay.Cells[room], current))
		}
		fmt.Fprintln(w)
	}
}

// DumpMap writes a full debug dump of a session's map: metadata, legend,
// one grid per level, then every room and connector with coordinates.
func DumpMap(w io.Writer, s *session.Session) {
	g := s.Graph()
	lay, _ := s.Map(session.MapOptions{Placeholders: true})
	current := s.CurrentRoom()
	minX, minY, maxX, maxY := lay.Bounds()

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, connectors, session) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "scenario: %q\n", g.Scenario().Name)
	fmt.Fprintf(w, "session: %s\n", s.ID)
	fmt.Fprintf(w, "entry_room: %s\n", lay.Entry)
	fmt.Fprintf(w, "current_room: %s\n", current)
	fmt.Fprintf(w, "rooms_total: %d\n", len(g.Rooms()))
	fmt.Fprintf(w, "rooms_visited: %d\n", len(s.Visited()))
	fmt.Fprintf(w, "rooms_placed: %d\n", len(lay.Order))
	fmt.Fprintf(w, "bounds: x %d..%d y %d..%d\n", minX, maxX, minY, maxY)
	fmt.Fprintf(w, "coordinate_system: x,y,level (north = +y, east = +x, up = +level)\n")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = visited room  ? = known, not visited  L = locked  d = dark  @ = player")
	fmt.Fprintln(w, "")

	for _, level := range lay.Levels() {
		fmt.Fprintf(w, "--- Map (%s) ---\n", renderer.LevelName(level))
		writeMapGrid(w, g, lay, level, current)
		fmt.Fprintln(w, "")
	}

	fmt.Fprintln(w, "--- Rooms (placement order) ---")
	for _, id := range lay.Order {
		c := lay.Cells[id]
		fmt.Fprintf(w, "  room: %s name: %q x: %d y: %d level: %d visited: %v placeholder: %v items: %v\n",
			id, g.RoomName(id), c.X, c.Y, c.Level, c.Visited, c.Placeholder, s.ItemsIn(id))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Connectors ---")
	for _, c := range lay.Connectors {
		fmt.Fprintf(w, "  %s -%s-> %s loop_back: %v reciprocal: %v\n", c.From, c.Direction, c.To, c.LoopBack, c.Reciprocal)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Unplaced visited rooms ---")
	if len(lay.Unplaced) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, id := range lay.Unplaced {
		fmt.Fprintf(w, "  %s\n", id)
	}
}

// DumpMapToFile writes DumpMap to path (DefaultMapDumpFile when empty) and
// returns the absolute path written.
func DumpMapToFile(s *session.Session, path string) (string, error) {
	if path == "" {
		path = DefaultMapDumpFile
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	DumpMap(f, s)
	return absPath, nil
}
