package gameplay

import (
	"strings"

	"dungeon/pkg/engine/input"
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/messages"
	"dungeon/pkg/game/state"
)

func handleTake(g *world.Graph, p *state.Player, in input.Intent) Result {
	if in.Object == "" {
		return message(messages.Get("TAKE_WHAT"))
	}
	if !CanSee(g, p) {
		return message(messages.Get("TAKE_TOO_DARK"))
	}

	matches := resolveItems(g, p.ItemsHere(), in.Object)
	switch len(matches) {
	case 0:
		return message(messages.Get("TAKE_NOT_FOUND", in.Object))
	case 1:
	default:
		return message(messages.Get("AMBIGUOUS", itemNames(matches)))
	}

	item := matches[0]
	if err := p.TakeItem(item.ID); err != nil {
		return message(messages.Get("TAKE_NOT_FOUND", in.Object))
	}
	return message(messages.Get("TAKE_OK", item.Name))
}

func handleDrop(g *world.Graph, p *state.Player, in input.Intent) Result {
	if in.Object == "" {
		return message(messages.Get("DROP_WHAT"))
	}

	matches := resolveItems(g, p.Inventory, in.Object)
	switch len(matches) {
	case 0:
		return message(messages.Get("DROP_NOT_FOUND", in.Object))
	case 1:
	default:
		return message(messages.Get("AMBIGUOUS", itemNames(matches)))
	}

	item := matches[0]
	if err := p.DropItem(item.ID); err != nil {
		return message(messages.Get("DROP_NOT_FOUND", in.Object))
	}
	return message(messages.Get("DROP_OK", item.Name))
}

func handleInventory(g *world.Graph, p *state.Player, _ input.Intent) Result {
	if len(p.Inventory) == 0 {
		return message(messages.Get("INVENTORY_EMPTY"))
	}

	lines := []string{messages.Get("INVENTORY_HEADER")}
	for _, id := range p.Inventory {
		item, ok := g.Item(id)
		if !ok {
			continue
		}
		lines = append(lines, messages.Get("INVENTORY_LINE", item.Name, item.Type))
	}
	return message(strings.Join(lines, "\n"))
}
