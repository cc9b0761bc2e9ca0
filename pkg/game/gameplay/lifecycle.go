package gameplay

import (
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/state"
)

// Welcome greets a new player with the scenario and their starting room. It
// is recorded in the transcript like any other result.
func Welcome(g *world.Graph, p *state.Player) Result {
	msg := g.Scenario().WelcomeMessage + "\n\n" + describeRoom(g, p)
	p.AddMessage(msg)

	return Result{
		Kind:        ResultMessage,
		Message:     msg,
		RoomImage:   g.RoomImage(p.CurrentRoom),
		RoomChanged: true,
	}
}
