// Package setup checks a loaded dungeon for rooms a player can never see
// and locks a player can never open.
package setup

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"dungeon/pkg/engine/world"
)

// reachableRooms returns every room reachable from start along directed
// exits. Rooms for which blocked returns true are never entered; start
// itself is always included.
func reachableRooms(g *world.Graph, start world.RoomID, blocked func(world.RoomID) bool) mapset.Set[world.RoomID] {
	reachable := mapset.New[world.RoomID]()
	if !g.HasRoom(start) {
		return reachable
	}

	q := queue.New[world.RoomID]()
	q.Enqueue(start)
	reachable.Put(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, e := range g.Exits(current) {
			if reachable.Has(e.To) || (blocked != nil && blocked(e.To)) {
				continue
			}
			reachable.Put(e.To)
			q.Enqueue(e.To)
		}
	}

	return reachable
}

// Unreachable returns the rooms that cannot be reached from the entry room
// by any sequence of moves, ignoring locks. Rooms are listed in definition
// order.
func Unreachable(g *world.Graph) []world.RoomID {
	reachable := reachableRooms(g, g.Entry(), nil)

	var out []world.RoomID
	for _, id := range g.Rooms() {
		if !reachable.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
