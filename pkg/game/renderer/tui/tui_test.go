package tui

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"dungeon/pkg/engine/layout"
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/renderer"
)

const chainYAML = `
themes:
  - {name: forest, type: exterior}
  - {name: crypt, type: underground}
map:
  rooms:
    - {room_ref_id: room1, name: Clearing, theme: forest}
    - {room_ref_id: room2, name: Old Oak, theme: forest}
    - {room_ref_id: room3, name: Tomb, theme: crypt}
    - {room_ref_id: cellar, name: Root Cellar, theme: crypt}
  connections:
    room1: {north: room2, down: cellar}
    room2: {south: room1, east: room3}
`

func visitedSet(rooms ...world.RoomID) mapset.Set[world.RoomID] {
	set := mapset.New[world.RoomID]()
	for _, r := range rooms {
		set.Put(r)
	}
	return set
}

func noColor(t *testing.T) {
	t.Helper()
	prev := color.Enable
	color.Enable = false
	t.Cleanup(func() { color.Enable = prev })
}

func chainScene(t *testing.T, visited ...world.RoomID) *renderer.Scene {
	t.Helper()
	g, err := world.Parse([]byte(chainYAML))
	if err != nil {
		t.Fatalf("world.Parse() error = %v", err)
	}
	set := visitedSet(visited...)
	lay := layout.Layout(g, set, "room1", layout.Options{})
	return renderer.BuildScene(lay, g, set, renderer.SceneOptions{Current: "room1"})
}

func TestRenderMap_Grid(t *testing.T) {
	noColor(t)
	out := New().RenderMap(chainScene(t, "room1", "room2", "room3"))

	want := "♣╌▼\n│\n@\n"
	if !strings.HasPrefix(out, want) {
		t.Errorf("RenderMap() =\n%s\nwant it to start with\n%s", out, want)
	}
	for _, label := range []string{"Clearing", "Old Oak", "Tomb"} {
		if !strings.Contains(out, label) {
			t.Errorf("legend missing %q:\n%s", label, out)
		}
	}
}

func TestRenderMap_LevelsAndStairs(t *testing.T) {
	noColor(t)
	out := New().RenderMap(chainScene(t, "room1", "cellar"))

	ground := strings.Index(out, "Ground level")
	below := strings.Index(out, "Level -1")
	if ground < 0 || below < 0 || below < ground {
		t.Errorf("RenderMap() =\n%s\nwant the ground level above level -1", out)
	}
	if !strings.Contains(out, "↕ Clearing down Root Cellar") {
		t.Errorf("RenderMap() =\n%s\nwant the stairs listed", out)
	}
}

func TestRenderMap_Idempotent(t *testing.T) {
	r := New()
	first := r.RenderMap(chainScene(t, "room1", "room2", "room3"))
	for i := 0; i < 5; i++ {
		if again := r.RenderMap(chainScene(t, "room1", "room2", "room3")); again != first {
			t.Fatalf("RenderMap run %d differs", i)
		}
	}
}

func TestRenderMap_LegendExplainsRoomGlyphs(t *testing.T) {
	noColor(t)
	out := New().RenderMap(chainScene(t, "room1", "room2", "room3"))

	for _, want := range []string{"@ you", "♣ exterior", "▼ underground", "□ interior", "● not visited"} {
		if !strings.Contains(out, want) {
			t.Errorf("legend missing %q:\n%s", want, out)
		}
	}
	for _, want := range []string{"♣ Old Oak", "▼ Tomb"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderMap() missing room line %q:\n%s", want, out)
		}
	}
	for _, line := range strings.Split(out, "\n") {
		if n := utf8.RuneCountInString(line); n > 80 {
			t.Errorf("legend line %q is %d wide, want at most 80", line, n)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	New().RenderFrame(&buf, renderer.Frame{
		Room:      "Clearing",
		Inventory: []string{"lamp", "sword"},
		Messages:  []string{"You take the ITEM{sword}.", "100% of the ITEM{gold} is yours."},
	})

	out := buf.String()
	for _, want := range []string{"You are in Clearing", "Inventory: lamp, sword", "Messages", "  You take the sword.", "  100% of the gold is yours."} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderFrame() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderMap_Empty(t *testing.T) {
	noColor(t)
	out := New().RenderMap(&renderer.Scene{Unplaced: []world.RoomID{"island"}})

	for _, want := range []string{"You have not explored anything yet.", "could not be placed on the map: island"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderMap() = %q, want it to contain %q", out, want)
		}
	}
}
