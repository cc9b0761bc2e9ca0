package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"dungeon/pkg/engine/debug"
	"dungeon/pkg/engine/world"
)

// buildGraph makes a graph of bare rooms from "from dir to" triples
func buildGraph(t *testing.T, rooms []string, edges ...string) *world.Graph {
	t.Helper()
	var b strings.Builder
	b.WriteString("map:\n  rooms:\n")
	for _, r := range rooms {
		b.WriteString("    - room_ref_id: " + r + "\n")
	}
	if len(edges) > 0 {
		b.WriteString("  connections:\n")
		byFrom := map[string][]string{}
		var order []string
		for _, e := range edges {
			f := strings.Fields(e)
			if _, ok := byFrom[f[0]]; !ok {
				order = append(order, f[0])
			}
			byFrom[f[0]] = append(byFrom[f[0]], "      "+f[1]+": "+f[2]+"\n")
		}
		for _, from := range order {
			b.WriteString("    " + from + ":\n")
			for _, line := range byFrom[from] {
				b.WriteString(line)
			}
		}
	}
	g, err := world.Parse([]byte(b.String()))
	if err != nil {
		t.Fatalf("world.Parse() error = %v\n%s", err, b.String())
	}
	return g
}

func visitedSet(rooms ...world.RoomID) mapset.Set[world.RoomID] {
	set := mapset.New[world.RoomID]()
	for _, r := range rooms {
		set.Put(r)
	}
	return set
}

func assertPoint(t *testing.T, res *Result, room world.RoomID, want Point) {
	t.Helper()
	c, ok := res.Cells[room]
	if !ok {
		t.Errorf("room %s not placed, want %+v", room, want)
		return
	}
	if c.Point != want {
		t.Errorf("room %s at %+v, want %+v", room, c.Point, want)
	}
}

func TestLayout_ThreeRoomChain(t *testing.T) {
	g := buildGraph(t, []string{"room1", "room2", "room3"},
		"room1 north room2",
		"room2 east room3",
	)
	res := Layout(g, visitedSet("room1", "room2", "room3"), "room1", Options{})

	assertPoint(t, res, "room1", Point{X: 0, Y: 0})
	assertPoint(t, res, "room2", Point{X: 0, Y: 1})
	assertPoint(t, res, "room3", Point{X: 1, Y: 1})

	if len(res.Connectors) != 2 {
		t.Fatalf("len(Connectors) = %d, want 2", len(res.Connectors))
	}
	for _, c := range res.Connectors {
		if c.LoopBack {
			t.Errorf("connector %+v LoopBack = true, want false", c)
		}
	}
	if len(res.Unplaced) != 0 {
		t.Errorf("Unplaced = %v, want none", res.Unplaced)
	}
}

func TestLayout_Deterministic(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d", "e"},
		"a north b", "a east c", "b east d", "c north e", "d south c", "e west b",
	)
	visited := visitedSet("a", "b", "c", "d", "e")

	first := Layout(g, visited, "a", Options{})
	for i := 0; i < 10; i++ {
		again := Layout(g, visited, "a", Options{})
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Layout run %d = %+v, want %+v", i, again, first)
		}
	}
}

func TestLayout_FirstAssignmentWins(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d"},
		"a north b", "a east c", "b east d", "c north d",
	)
	res := Layout(g, visitedSet("a", "b", "c", "d"), "a", Options{})

	assertPoint(t, res, "d", Point{X: 1, Y: 1})

	var loopBacks []Connector
	for _, c := range res.Connectors {
		if c.LoopBack {
			loopBacks = append(loopBacks, c)
		}
	}
	if len(loopBacks) != 1 || loopBacks[0].From != "c" || loopBacks[0].To != "d" {
		t.Errorf("loop-back connectors = %+v, want only c -> d", loopBacks)
	}
}

func TestLayout_LoopAroundSquare(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d"},
		"a north b", "b east c", "c south d", "d west a",
	)
	res := Layout(g, visitedSet("a", "b", "c", "d"), "a", Options{})

	assertPoint(t, res, "b", Point{X: 0, Y: 1})
	assertPoint(t, res, "c", Point{X: 1, Y: 1})
	assertPoint(t, res, "d", Point{X: 1, Y: 0})
	if len(res.Connectors) != 4 {
		t.Errorf("len(Connectors) = %d, want 4", len(res.Connectors))
	}
}

func TestLayout_CollisionSlidesAlong(t *testing.T) {
	// d and e both want (1,1); d gets there first.
	g := buildGraph(t, []string{"a", "b", "c", "d", "e"},
		"a north b", "a east c", "b east d", "c north e",
	)
	res := Layout(g, visitedSet("a", "b", "c", "d", "e"), "a", Options{})

	assertPoint(t, res, "d", Point{X: 1, Y: 1})
	assertPoint(t, res, "e", Point{X: 1, Y: 2})

	seen := map[Point]world.RoomID{}
	for _, room := range res.Order {
		pt := res.Cells[room].Point
		if other, dup := seen[pt]; dup {
			t.Errorf("rooms %s and %s share %+v", other, room, pt)
		}
		seen[pt] = room
	}
}

func TestLayout_UpAndDownChangeLevel(t *testing.T) {
	g := buildGraph(t, []string{"hall", "attic", "cellar"},
		"hall up attic", "hall down cellar", "attic down hall",
	)
	res := Layout(g, visitedSet("hall", "attic", "cellar"), "hall", Options{})

	assertPoint(t, res, "attic", Point{X: 0, Y: 0, Level: 1})
	assertPoint(t, res, "cellar", Point{X: 0, Y: 0, Level: -1})
	if got := res.Levels(); !reflect.DeepEqual(got, []int{1, 0, -1}) {
		t.Errorf("Levels() = %v, want [1 0 -1]", got)
	}

	var reciprocal int
	for _, c := range res.Connectors {
		if c.Reciprocal {
			reciprocal++
		}
	}
	if reciprocal != 2 {
		t.Errorf("reciprocal connectors = %d, want 2 (hall up attic, attic down hall)", reciprocal)
	}
}

func TestLayout_UnvisitedExcluded(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, "a north b", "b north c")
	res := Layout(g, visitedSet("a"), "a", Options{})

	if len(res.Cells) != 1 {
		t.Errorf("placed %v, want only a", res.Order)
	}
	if len(res.Connectors) != 0 {
		t.Errorf("Connectors = %+v, want none", res.Connectors)
	}
}

func TestLayout_Placeholders(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, "a north b", "b north c")
	res := Layout(g, visitedSet("a"), "a", Options{Placeholders: true})

	b, ok := res.Cells["b"]
	if !ok {
		t.Fatal("placeholder b not placed")
	}
	if !b.Placeholder || b.Visited {
		t.Errorf("cell b = %+v, want an unvisited placeholder", b)
	}
	if _, ok := res.Cells["c"]; ok {
		t.Error("c placed, want placeholders left unexpanded")
	}
}

func TestLayout_DisconnectedVisitedRoomsAreReported(t *testing.T) {
	var buf strings.Builder
	g := buildGraph(t, []string{"a", "b", "island"}, "a east b")
	res := Layout(g, visitedSet("a", "b", "island"), "a", Options{Logger: debug.NewLogger(true, &buf)})

	if !reflect.DeepEqual(res.Unplaced, []world.RoomID{"island"}) {
		t.Errorf("Unplaced = %v, want [island]", res.Unplaced)
	}
	assertPoint(t, res, "b", Point{X: 1, Y: 0})
	if !strings.Contains(buf.String(), "island") {
		t.Errorf("log = %q, want the unplaced room named", buf.String())
	}
}

func TestLayout_UnknownEntry(t *testing.T) {
	g := buildGraph(t, []string{"a"})
	res := Layout(g, visitedSet("a"), "nowhere", Options{Logger: debug.NewLogger(false, nil)})

	if !res.Empty() {
		t.Errorf("placed %v, want nothing", res.Order)
	}
	if !reflect.DeepEqual(res.Unplaced, []world.RoomID{"a"}) {
		t.Errorf("Unplaced = %v, want [a]", res.Unplaced)
	}
}

func TestResult_Bounds(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, "a west b", "a south c")
	res := Layout(g, visitedSet("a", "b", "c"), "a", Options{})

	minX, minY, maxX, maxY := res.Bounds()
	if minX != -1 || minY != -1 || maxX != 0 || maxY != 0 {
		t.Errorf("Bounds() = (%d, %d, %d, %d), want (-1, -1, 0, 0)", minX, minY, maxX, maxY)
	}
}
