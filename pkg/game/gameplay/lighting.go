package gameplay

import (
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/state"
)

// HasLight reports whether the player carries a light source
func HasLight(g *world.Graph, p *state.Player) bool {
	for _, id := range p.Inventory {
		if item, ok := g.Item(id); ok && item.IsLight() {
			return true
		}
	}
	return false
}

// CanSee reports whether the player can make out items and people in their
// current room. Dark rooms need a carried light.
func CanSee(g *world.Graph, p *state.Player) bool {
	room, ok := g.Room(p.CurrentRoom)
	if !ok {
		return false
	}
	return !room.IsDark || HasLight(g, p)
}
