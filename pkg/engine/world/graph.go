package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Exit is one outgoing connection of a room
type Exit struct {
	Direction Direction
	To        RoomID
}

// RoomDistance pairs a room with its hop count from a starting room
type RoomDistance struct {
	Room     RoomID
	Distance int
}

// Graph is the validated, immutable room and connection structure of one
// dungeon. It is built by the loader and shared read-only between sessions.
type Graph struct {
	scenario Scenario

	themes     map[string]*Theme
	themeOrder []string

	rooms     map[RoomID]*Room
	roomOrder []RoomID

	exits map[RoomID]map[Direction]RoomID
	items map[ItemID]*Item

	directionInfo map[RoomID]string

	entry   RoomID
	visited []RoomID
}

// Scenario returns the scenario metadata
func (g *Graph) Scenario() Scenario {
	return g.scenario
}

// Entry returns the room new players start in
func (g *Graph) Entry() RoomID {
	return g.entry
}

// InitialVisited returns the rooms that count as visited before play starts
func (g *Graph) InitialVisited() []RoomID {
	return append([]RoomID(nil), g.visited...)
}

// Room returns a copy of the room with the given id
func (g *Graph) Room(id RoomID) (*Room, bool) {
	r, ok := g.rooms[id]
	if !ok {
		return nil, false
	}
	return r.clone(), true
}

// HasRoom reports whether id names a room
func (g *Graph) HasRoom(id RoomID) bool {
	_, ok := g.rooms[id]
	return ok
}

// RoomName returns the display name of a room, or its id when unnamed
func (g *Graph) RoomName(id RoomID) string {
	if r, ok := g.rooms[id]; ok && r.Name != "" {
		return r.Name
	}
	return string(id)
}

// Rooms returns all room ids in load order
func (g *Graph) Rooms() []RoomID {
	return append([]RoomID(nil), g.roomOrder...)
}

// ForEachRoom calls fn for each room in load order
func (g *Graph) ForEachRoom(fn func(room *Room)) {
	for _, id := range g.roomOrder {
		fn(g.rooms[id].clone())
	}
}

// Theme returns the theme with the given name
func (g *Graph) Theme(name string) (Theme, bool) {
	t, ok := g.themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, false
	}
	return *t, true
}

// Themes returns all themes in load order
func (g *Graph) Themes() []Theme {
	themes := make([]Theme, 0, len(g.themeOrder))
	for _, name := range g.themeOrder {
		themes = append(themes, *g.themes[name])
	}
	return themes
}

// RoomTheme returns the theme of a room
func (g *Graph) RoomTheme(id RoomID) Theme {
	r, ok := g.rooms[id]
	if !ok {
		return Theme{}
	}
	t, _ := g.Theme(r.Theme)
	return t
}

// Item returns the item with the given id
func (g *Graph) Item(id ItemID) (*Item, bool) {
	i, ok := g.items[id]
	if !ok {
		return nil, false
	}
	c := *i
	c.Aliases = append([]string(nil), i.Aliases...)
	return &c, true
}

// Items returns every item id, sorted
func (g *Graph) Items() []ItemID {
	ids := make([]ItemID, 0, len(g.items))
	for id := range g.items {
		ids = append(ids, id)
	}
	sortItemIDs(ids)
	return ids
}

// Exit returns the room reached by leaving from in direction dir
func (g *Graph) Exit(from RoomID, dir Direction) (RoomID, bool) {
	to, ok := g.exits[from][dir]
	return to, ok
}

// Exits returns the outgoing connections of a room in priority order
func (g *Graph) Exits(from RoomID) []Exit {
	var exits []Exit
	for _, dir := range AllDirections() {
		if to, ok := g.exits[from][dir]; ok {
			exits = append(exits, Exit{Direction: dir, To: to})
		}
	}
	return exits
}

// RoomImage returns the image for a room, falling back to its theme's
// default image and then to DefaultRoomImage
func (g *Graph) RoomImage(id RoomID) string {
	r, ok := g.rooms[id]
	if !ok {
		return DefaultRoomImage
	}
	if r.Image != "" {
		return r.Image
	}
	if t, ok := g.themes[r.Theme]; ok && t.DefaultImage != "" {
		return t.DefaultImage
	}
	return DefaultRoomImage
}

// DirectionInfo describes the exits of a room in prose
func (g *Graph) DirectionInfo(id RoomID) string {
	return g.directionInfo[id]
}

func (g *Graph) buildDirectionInfo() {
	g.directionInfo = make(map[RoomID]string, len(g.rooms))
	for _, id := range g.roomOrder {
		exits := g.Exits(id)
		if len(exits) == 0 {
			g.directionInfo[id] = "There are no exits from this room."
			continue
		}
		parts := make([]string, 0, len(exits))
		for _, e := range exits {
			parts = append(parts, fmt.Sprintf("There is a %s to the %s.", g.rooms[e.To].TypeName(), e.Direction))
		}
		g.directionInfo[id] = strings.Join(parts, " ")
	}
}

// RoomsWithinDistance returns the rooms reachable from start in at most
// maxDistance moves, nearest first. The start room itself is not included.
func (g *Graph) RoomsWithinDistance(start RoomID, maxDistance int) []RoomDistance {
	if !g.HasRoom(start) || maxDistance < 0 {
		return nil
	}

	var found []RoomDistance
	seen := mapset.New[RoomID]()
	seen.Put(start)

	q := queue.New[RoomDistance]()
	q.Enqueue(RoomDistance{Room: start})

	for !q.Empty() {
		current := q.Dequeue()
		if current.Room != start {
			found = append(found, current)
		}

		if current.Distance == maxDistance {
			continue
		}
		for _, e := range g.Exits(current.Room) {
			if seen.Has(e.To) {
				continue
			}
			seen.Put(e.To)
			q.Enqueue(RoomDistance{Room: e.To, Distance: current.Distance + 1})
		}
	}

	return found
}

func sortItemIDs(ids []ItemID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
