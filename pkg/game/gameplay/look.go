package gameplay

import (
	"strings"

	"dungeon/pkg/engine/input"
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/messages"
	"dungeon/pkg/game/state"
)

func handleLook(g *world.Graph, p *state.Player, _ input.Intent) Result {
	return message(describeRoom(g, p))
}

// describeRoom is what the player sees on entering or looking around
func describeRoom(g *world.Graph, p *state.Player) string {
	room, ok := g.Room(p.CurrentRoom)
	if !ok {
		return ""
	}

	lines := []string{"ROOM{" + room.Name + "}"}

	if !CanSee(g, p) {
		lines = append(lines, messages.Get("LOOK_DARK"), g.DirectionInfo(room.ID))
		return strings.Join(lines, "\n")
	}

	if room.Description != "" {
		lines = append(lines, room.Description)
	}
	lines = append(lines, g.DirectionInfo(room.ID))

	if len(room.NPCs) > 0 {
		lines = append(lines, messages.Get("LOOK_NPCS", strings.Join(room.NPCs, ", ")))
	}

	var items []*world.Item
	for _, id := range p.ItemsHere() {
		if item, ok := g.Item(id); ok {
			items = append(items, item)
		}
	}
	if len(items) > 0 {
		lines = append(lines, messages.Get("LOOK_ITEMS", itemNames(items)))
	}

	return strings.Join(lines, "\n")
}
