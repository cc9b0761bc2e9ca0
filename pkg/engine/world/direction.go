package world

import "strings"

// Direction labels a connection between two rooms
type Direction int

// Direction constants, in layout priority order
const (
	North Direction = iota
	South
	East
	West
	Up
	Down
)

// AllDirections returns all valid directions in their fixed priority order
func AllDirections() []Direction {
	return []Direction{North, South, East, West, Up, Down}
}

var directionAliases = map[string]Direction{
	"north": North,
	"n":     North,
	"south": South,
	"s":     South,
	"east":  East,
	"e":     East,
	"west":  West,
	"w":     West,
	"up":    Up,
	"u":     Up,
	"down":  Down,
	"d":     Down,
}

// ParseDirection resolves a direction name or single-letter alias, ignoring case
func ParseDirection(s string) (Direction, bool) {
	d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

// DirectionWords returns every word ParseDirection accepts
func DirectionWords() []string {
	words := make([]string, 0, len(directionAliases))
	for w := range directionAliases {
		words = append(words, w)
	}
	return words
}

// String returns the lower-case name of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Alias returns the single-letter alias of a direction
func (d Direction) Alias() string {
	if !d.IsValid() {
		return "?"
	}
	return d.String()[:1]
}

// IsValid returns true if the direction is one of the six known directions
func (d Direction) IsValid() bool {
	return d >= North && d <= Down
}

// IsVertical reports whether the direction changes level rather than position
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// Delta returns the map offset for this direction. North is +y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// LevelDelta returns +1 for up, -1 for down and 0 otherwise
func (d Direction) LevelDelta() int {
	switch d {
	case Up:
		return 1
	case Down:
		return -1
	default:
		return 0
	}
}
