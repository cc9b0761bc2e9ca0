package gameplay

import (
	"strings"

	"dungeon/pkg/engine/input"
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/messages"
	"dungeon/pkg/game/state"
)

// CanEnter checks if the player may walk into a room. When the room is locked
// it returns the carried item that opens it, if any.
func CanEnter(g *world.Graph, p *state.Player, to world.RoomID) (bool, *world.Item) {
	room, ok := g.Room(to)
	if !ok {
		return false, nil
	}
	if !room.IsLocked || p.IsUnlocked(to) {
		return true, nil
	}
	if key, ok := keyFor(g, p, to); ok {
		return true, key
	}
	return false, nil
}

// keyFor returns the first carried item that unlocks a room
func keyFor(g *world.Graph, p *state.Player, room world.RoomID) (*world.Item, bool) {
	for _, id := range p.Inventory {
		item, ok := g.Item(id)
		if ok && item.Unlocks == room {
			return item, true
		}
	}
	return nil, false
}

func handleMove(g *world.Graph, p *state.Player, in input.Intent) Result {
	if !in.HasDirection {
		if len(g.Exits(p.CurrentRoom)) == 0 {
			return message(messages.Get("MOVE_STUCK"))
		}
		return message(messages.Get("MOVE_WHICH_WAY", exitList(g, p.CurrentRoom)))
	}

	dir := in.Direction
	to, ok := g.Exit(p.CurrentRoom, dir)
	if !ok {
		return message(messages.Get("MOVE_NO_EXIT"))
	}

	canEnter, key := CanEnter(g, p, to)
	if !canEnter {
		return message(messages.Get("MOVE_BLOCKED", dir, g.RoomName(to)))
	}

	var b strings.Builder
	if key != nil {
		p.Unlock(to)
		b.WriteString(messages.Get("MOVE_UNLOCKED", dir, key.Name))
		b.WriteString("\n")
	}

	p.MoveTo(to)

	b.WriteString(messages.Get("MOVE_OK", dir))
	b.WriteString("\n\n")
	b.WriteString(describeRoom(g, p))

	return Result{
		Kind:        ResultMessage,
		Message:     b.String(),
		RoomImage:   g.RoomImage(to),
		RoomChanged: true,
	}
}

// exitList names the exits of a room as ACTION markup, in direction order
func exitList(g *world.Graph, room world.RoomID) string {
	exits := g.Exits(room)
	names := make([]string, 0, len(exits))
	for _, e := range exits {
		names = append(names, "ACTION{"+e.Direction.String()+"}")
	}
	return strings.Join(names, ", ")
}
