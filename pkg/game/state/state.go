package state

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"dungeon/pkg/engine/world"
)

// Errors returned by item moves. Nothing is changed when they occur.
var (
	ErrItemNotInRoom = errors.New("item is not in the current room")
	ErrItemNotHeld   = errors.New("item is not in the inventory")
)

const maxMessages = 50

// Container says where an item currently is
type Container struct {
	Room      world.RoomID
	Inventory bool
}

// Player is the mutable progress of one session: where the player is, what
// they carry, and which rooms they have seen. Room item lists are a private
// overlay seeded from the graph, so the shared graph is never written to.
type Player struct {
	CurrentRoom world.RoomID

	Inventory []world.ItemID

	Visited  mapset.Set[world.RoomID]
	Unlocked mapset.Set[world.RoomID]

	Messages []string

	roomItems map[world.RoomID][]world.ItemID

	// unknownCount rotates the replies to commands that make no sense
	unknownCount int
}

// NewPlayer creates a player standing in the graph's entry room
func NewPlayer(g *world.Graph) *Player {
	p := &Player{
		CurrentRoom: g.Entry(),
		Visited:     mapset.New[world.RoomID](),
		Unlocked:    mapset.New[world.RoomID](),
		Messages:    make([]string, 0),
		roomItems:   make(map[world.RoomID][]world.ItemID),
	}

	for _, id := range g.InitialVisited() {
		p.Visited.Put(id)
	}
	p.Visited.Put(p.CurrentRoom)

	g.ForEachRoom(func(room *world.Room) {
		if len(room.Treasures) > 0 {
			p.roomItems[room.ID] = room.Treasures
		}
	})

	return p
}

// ItemsIn returns the items lying in a room, in the order they were put there
func (p *Player) ItemsIn(room world.RoomID) []world.ItemID {
	return append([]world.ItemID(nil), p.roomItems[room]...)
}

// ItemsHere returns the items lying in the current room
func (p *Player) ItemsHere() []world.ItemID {
	return p.ItemsIn(p.CurrentRoom)
}

// HasItem checks if the player carries a specific item
func (p *Player) HasItem(id world.ItemID) bool {
	return indexOf(p.Inventory, id) >= 0
}

// Location returns the container holding an item
func (p *Player) Location(id world.ItemID) (Container, bool) {
	if p.HasItem(id) {
		return Container{Inventory: true}, true
	}
	for room, items := range p.roomItems {
		if indexOf(items, id) >= 0 {
			return Container{Room: room}, true
		}
	}
	return Container{}, false
}

// TakeItem moves an item from the current room to the end of the inventory
func (p *Player) TakeItem(id world.ItemID) error {
	items := p.roomItems[p.CurrentRoom]
	i := indexOf(items, id)
	if i < 0 {
		return fmt.Errorf("take %s: %w", id, ErrItemNotInRoom)
	}

	p.roomItems[p.CurrentRoom] = remove(items, i)
	p.Inventory = append(p.Inventory, id)
	return nil
}

// DropItem moves an item from the inventory to the end of the current room's list
func (p *Player) DropItem(id world.ItemID) error {
	i := indexOf(p.Inventory, id)
	if i < 0 {
		return fmt.Errorf("drop %s: %w", id, ErrItemNotHeld)
	}

	p.Inventory = remove(p.Inventory, i)
	p.roomItems[p.CurrentRoom] = append(p.roomItems[p.CurrentRoom], id)
	return nil
}

// MoveTo puts the player in a room and marks it visited
func (p *Player) MoveTo(room world.RoomID) {
	p.CurrentRoom = room
	p.Visited.Put(room)
}

// HasVisited reports whether the player has been in a room
func (p *Player) HasVisited(room world.RoomID) bool {
	return p.Visited.Has(room)
}

// VisitedRooms returns the visited rooms, sorted
func (p *Player) VisitedRooms() []world.RoomID {
	rooms := make([]world.RoomID, 0, p.Visited.Size())
	p.Visited.Each(func(id world.RoomID) {
		rooms = append(rooms, id)
	})
	sort.Slice(rooms, func(i, j int) bool { return rooms[i] < rooms[j] })
	return rooms
}

// Unlock opens a locked room for this player only
func (p *Player) Unlock(room world.RoomID) {
	p.Unlocked.Put(room)
}

// IsUnlocked reports whether this player has opened a locked room
func (p *Player) IsUnlocked(room world.RoomID) bool {
	return p.Unlocked.Has(room)
}

// NextUnknown returns a counter that increases on every call
func (p *Player) NextUnknown() int {
	n := p.unknownCount
	p.unknownCount++
	return n
}

// AddMessage adds a message to the player's transcript
func (p *Player) AddMessage(msg string) {
	p.Messages = append(p.Messages, msg)

	// Keep only the last maxMessages
	if len(p.Messages) > maxMessages {
		p.Messages = p.Messages[len(p.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (p *Player) ClearMessages() {
	p.Messages = make([]string, 0)
}

// Check verifies that every item of the graph sits in exactly one container
func (p *Player) Check(g *world.Graph) error {
	seen := make(map[world.ItemID]int)
	for _, id := range p.Inventory {
		seen[id]++
	}
	for _, items := range p.roomItems {
		for _, id := range items {
			seen[id]++
		}
	}
	for _, id := range g.Items() {
		switch n := seen[id]; {
		case n == 0:
			return fmt.Errorf("item %s is in no container", id)
		case n > 1:
			return fmt.Errorf("item %s is in %d containers", id, n)
		}
		delete(seen, id)
	}
	for id := range seen {
		return fmt.Errorf("unknown item %s", id)
	}
	return nil
}

func indexOf(items []world.ItemID, id world.ItemID) int {
	for i, it := range items {
		if it == id {
			return i
		}
	}
	return -1
}

// remove returns items without index i, never sharing the backing array
func remove(items []world.ItemID, i int) []world.ItemID {
	out := make([]world.ItemID, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
