// Package layout projects the explored part of a world graph onto a 2D grid.
package layout

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"dungeon/pkg/engine/debug"
	"dungeon/pkg/engine/world"
)

// Point is a grid position. Level separates rooms reached through up/down.
type Point struct {
	X, Y  int
	Level int
}

// Cell is the position assigned to one room
type Cell struct {
	Room world.RoomID
	Point

	Visited bool

	// Placeholder rooms are known through an exit of a visited room but
	// have not been entered
	Placeholder bool
}

// Connector is one directed connection with both ends on the map
type Connector struct {
	From      world.RoomID
	To        world.RoomID
	Direction world.Direction

	// LoopBack is set on edges that did not place their target: the
	// target already had a position when the edge was reached
	LoopBack bool

	// Reciprocal is set when the opposite edge To -> From also exists
	Reciprocal bool
}

// Options tune a layout run
type Options struct {
	// Placeholders includes unvisited rooms adjacent to visited ones
	Placeholders bool

	Logger *debug.Logger
}

// Result is the output of Layout
type Result struct {
	Entry world.RoomID

	Cells map[world.RoomID]Cell

	// Order lists placed rooms in the order they were assigned
	Order []world.RoomID

	Connectors []Connector

	// Unplaced lists visited rooms that could not be reached from the entry
	Unplaced []world.RoomID
}

type edge struct {
	from world.RoomID
	dir  world.Direction
}

// Layout assigns grid positions to the visited rooms of g by breadth-first
// traversal from entry, expanding exits in world.AllDirections order. Each
// step moves by the direction's delta. A room keeps the first position it is
// given; edges reaching it later become loop-back connectors. When a
// different room already holds the target position, the new room slides
// further along the same direction to the next free slot.
//
// The result depends only on the graph, the visited set, the entry room and
// the options.
func Layout(g *world.Graph, visited mapset.Set[world.RoomID], entry world.RoomID, opts Options) *Result {
	log := opts.Logger
	if log == nil {
		log = debug.Default()
	}

	res := &Result{
		Entry: entry,
		Cells: make(map[world.RoomID]Cell),
	}

	if !g.HasRoom(entry) {
		log.Warnf("layout: entry room %q does not exist", entry)
		res.Unplaced = sortedVisited(visited)
		return res
	}

	occupied := make(map[Point]world.RoomID)
	placedBy := make(map[world.RoomID]edge)

	place := func(room world.RoomID, pt Point) {
		res.Cells[room] = Cell{
			Room:        room,
			Point:       pt,
			Visited:     visited.Has(room),
			Placeholder: !visited.Has(room),
		}
		res.Order = append(res.Order, room)
		occupied[pt] = room
	}

	place(entry, Point{})
	if !visited.Has(entry) {
		// The entry is where the player stands, so it always counts as seen.
		c := res.Cells[entry]
		c.Placeholder = false
		res.Cells[entry] = c
	}

	q := queue.New[world.RoomID]()
	q.Enqueue(entry)

	for !q.Empty() {
		current := q.Dequeue()
		from := res.Cells[current].Point

		for _, e := range g.Exits(current) {
			if _, done := res.Cells[e.To]; done {
				continue
			}
			seen := visited.Has(e.To)
			if !seen && !opts.Placeholders {
				continue
			}

			pt := freeSlot(occupied, from, e.Direction)
			place(e.To, pt)
			placedBy[e.To] = edge{from: current, dir: e.Direction}

			if seen {
				q.Enqueue(e.To)
			}
		}
	}

	res.Connectors = connectors(g, res, placedBy)

	visited.Each(func(room world.RoomID) {
		if _, ok := res.Cells[room]; !ok {
			res.Unplaced = append(res.Unplaced, room)
		}
	})
	sortRooms(res.Unplaced)
	if len(res.Unplaced) > 0 {
		log.Warnf("layout: %d visited room(s) not reachable from %s through visited rooms: %v", len(res.Unplaced), entry, res.Unplaced)
	}

	return res
}

// freeSlot steps from a position in the given direction until it finds a
// position no room holds. Up and down step through levels.
func freeSlot(occupied map[Point]world.RoomID, from Point, dir world.Direction) Point {
	dx, dy := dir.Delta()
	dl := dir.LevelDelta()
	for step := 1; ; step++ {
		pt := Point{X: from.X + dx*step, Y: from.Y + dy*step, Level: from.Level + dl*step}
		if _, taken := occupied[pt]; !taken {
			return pt
		}
	}
}

func connectors(g *world.Graph, res *Result, placedBy map[world.RoomID]edge) []Connector {
	var out []Connector
	for _, from := range res.Order {
		for _, e := range g.Exits(from) {
			if _, ok := res.Cells[e.To]; !ok {
				continue
			}
			back, hasBack := g.Exit(e.To, e.Direction.Opposite())
			out = append(out, Connector{
				From:       from,
				To:         e.To,
				Direction:  e.Direction,
				LoopBack:   placedBy[e.To] != (edge{from: from, dir: e.Direction}),
				Reciprocal: hasBack && back == from,
			})
		}
	}
	return out
}

// Bounds returns the smallest rectangle holding every placed room
func (r *Result) Bounds() (minX, minY, maxX, maxY int) {
	first := true
	for _, room := range r.Order {
		c := r.Cells[room]
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY
}

// Levels returns the distinct levels in use, highest first
func (r *Result) Levels() []int {
	seen := make(map[int]bool)
	var levels []int
	for _, room := range r.Order {
		l := r.Cells[room].Level
		if !seen[l] {
			seen[l] = true
			levels = append(levels, l)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))
	return levels
}

// At returns the room placed at a position
func (r *Result) At(pt Point) (world.RoomID, bool) {
	for _, room := range r.Order {
		if r.Cells[room].Point == pt {
			return room, true
		}
	}
	return "", false
}

// Empty reports whether nothing was placed
func (r *Result) Empty() bool {
	return len(r.Order) == 0
}

func sortedVisited(visited mapset.Set[world.RoomID]) []world.RoomID {
	var rooms []world.RoomID
	visited.Each(func(room world.RoomID) {
		rooms = append(rooms, room)
	})
	sortRooms(rooms)
	return rooms
}

func sortRooms(rooms []world.RoomID) {
	sort.Slice(rooms, func(i, j int) bool { return rooms[i] < rooms[j] })
}
