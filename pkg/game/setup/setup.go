package setup

import (
	"dungeon/pkg/engine/debug"
	"dungeon/pkg/engine/world"
)

// Report summarises the checks run against a loaded dungeon
type Report struct {
	Rooms       int
	Items       int
	Unreachable []world.RoomID
	Locks       []LockProblem

	// Farthest is the room the most moves away from the entry, ignoring locks
	Farthest world.RoomDistance
}

// Analyze runs every check against g
func Analyze(g *world.Graph) Report {
	r := Report{
		Rooms:       len(g.Rooms()),
		Items:       len(g.Items()),
		Unreachable: Unreachable(g),
		Locks:       LockProblems(g),
		Farthest:    world.RoomDistance{Room: g.Entry()},
	}
	for _, rd := range g.RoomsWithinDistance(g.Entry(), r.Rooms) {
		if rd.Distance > r.Farthest.Distance {
			r.Farthest = rd
		}
	}
	return r
}

// OK returns true when every room can be reached and every lock opened
func (r Report) OK() bool {
	return len(r.Unreachable) == 0 && len(r.Locks) == 0
}

// Log writes the report to a diagnostic logger. Problems are warnings;
// they never stop a dungeon from being played.
func (r Report) Log(l *debug.Logger) {
	l.Printf("loaded %d rooms, %d items", r.Rooms, r.Items)
	l.Printf("farthest room %s is %d moves from the entry", r.Farthest.Room, r.Farthest.Distance)
	for _, id := range r.Unreachable {
		l.Warnf("room %s cannot be reached from the entry", id)
	}
	for _, p := range r.Locks {
		l.Warnf("locked room %s", p)
	}
}
