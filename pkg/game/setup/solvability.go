package setup

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"dungeon/pkg/engine/world"
)

// LockProblemKind says why a locked room can never be opened
type LockProblemKind int

const (
	// LockNoKey means no item in the dungeon unlocks the room
	LockNoKey LockProblemKind = iota
	// LockKeyUnreachable means every key lies in rooms the player cannot
	// get to without first opening this room or another sealed one
	LockKeyUnreachable
)

func (k LockProblemKind) String() string {
	switch k {
	case LockNoKey:
		return "no key"
	case LockKeyUnreachable:
		return "key unreachable"
	default:
		return "unknown"
	}
}

// LockProblem is a locked room a player starting at the entry can never open
type LockProblem struct {
	Room world.RoomID
	Kind LockProblemKind

	// Keys lists the items that would unlock the room, if any exist
	Keys []world.ItemID
}

func (p LockProblem) String() string {
	if len(p.Keys) == 0 {
		return fmt.Sprintf("%s: %s", p.Room, p.Kind)
	}
	keys := make([]string, 0, len(p.Keys))
	for _, k := range p.Keys {
		keys = append(keys, string(k))
	}
	return fmt.Sprintf("%s: %s (%s)", p.Room, p.Kind, strings.Join(keys, ", "))
}

// LockProblems simulates a player who collects every key they can reach
// and opens every lock they hold a key for, until nothing changes. Locked
// rooms still closed at the end are reported in definition order.
func LockProblems(g *world.Graph) []LockProblem {
	keys := make(map[world.RoomID][]world.ItemID)
	for _, id := range g.Items() {
		item, _ := g.Item(id)
		if item.Unlocks != "" {
			keys[item.Unlocks] = append(keys[item.Unlocks], id)
		}
	}

	locked := mapset.New[world.RoomID]()
	g.ForEachRoom(func(room *world.Room) {
		if room.IsLocked {
			locked.Put(room.ID)
		}
	})

	opened := mapset.New[world.RoomID]()
	sealed := func(id world.RoomID) bool {
		return locked.Has(id) && !opened.Has(id)
	}

	for {
		progress := false
		reachableRooms(g, g.Entry(), sealed).Each(func(id world.RoomID) {
			room, _ := g.Room(id)
			for _, itemID := range room.Treasures {
				item, ok := g.Item(itemID)
				if !ok || item.Unlocks == "" || opened.Has(item.Unlocks) {
					continue
				}
				opened.Put(item.Unlocks)
				progress = true
			}
		})
		if !progress {
			break
		}
	}

	var problems []LockProblem
	for _, id := range g.Rooms() {
		if !sealed(id) || id == g.Entry() {
			continue
		}
		p := LockProblem{Room: id, Kind: LockNoKey, Keys: keys[id]}
		if len(p.Keys) > 0 {
			p.Kind = LockKeyUnreachable
		}
		problems = append(problems, p)
	}
	return problems
}
