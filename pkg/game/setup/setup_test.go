package setup

import (
	"bytes"
	"strings"
	"testing"

	"dungeon/pkg/engine/debug"
	"dungeon/pkg/engine/world"
)

const manorYAML = `
scenario:
  name: Manor
map:
  rooms:
    - room_ref_id: hall
    - room_ref_id: cellar
      treasures:
        - id: brass_key
          name: brass key
          unlocks: library
    - room_ref_id: library
      is_locked: true
      treasures:
        - id: iron_key
          name: iron key
          unlocks: vault
    - room_ref_id: vault
      is_locked: true
    - room_ref_id: study
      is_locked: true
      treasures:
        - id: silver_key
          name: silver key
          unlocks: study
    - room_ref_id: tower
      is_locked: true
    - room_ref_id: island
  connections:
    hall:
      north: library
      east: study
      up: tower
      down: cellar
    cellar:
      up: hall
    library:
      south: hall
      west: vault
    island:
      south: hall
`

func mustParse(t *testing.T, doc string) *world.Graph {
	t.Helper()
	g, err := world.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return g
}

func TestUnreachable(t *testing.T) {
	g := mustParse(t, manorYAML)

	got := Unreachable(g)
	if len(got) != 1 || got[0] != "island" {
		t.Errorf("Unreachable() = %v, want [island]", got)
	}
}

func TestUnreachable_IgnoresLocks(t *testing.T) {
	g := mustParse(t, `
map:
  rooms:
    - room_ref_id: gate
    - room_ref_id: keep
      is_locked: true
  connections:
    gate:
      north: keep
`)
	if got := Unreachable(g); len(got) != 0 {
		t.Errorf("Unreachable() = %v, want none", got)
	}
}

func TestUnreachable_OneWayExits(t *testing.T) {
	g := mustParse(t, `
map:
  rooms:
    - room_ref_id: top
    - room_ref_id: bottom
  connections:
    bottom:
      up: top
`)
	got := Unreachable(g)
	if len(got) != 1 || got[0] != "bottom" {
		t.Errorf("Unreachable() = %v, want [bottom]", got)
	}
}

func TestLockProblems(t *testing.T) {
	g := mustParse(t, manorYAML)

	got := LockProblems(g)
	want := []LockProblem{
		{Room: "study", Kind: LockKeyUnreachable, Keys: []world.ItemID{"silver_key"}},
		{Room: "tower", Kind: LockNoKey},
	}
	if len(got) != len(want) {
		t.Fatalf("LockProblems() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].String() != want[i].String() {
			t.Errorf("LockProblems()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLockProblems_KeyChain(t *testing.T) {
	g := mustParse(t, manorYAML)

	for _, p := range LockProblems(g) {
		if p.Room == "library" || p.Room == "vault" {
			t.Errorf("LockProblems() reports %s, want it opened through the key chain", p)
		}
	}
}

func TestLockProblems_LockedEntry(t *testing.T) {
	g := mustParse(t, `
map:
  rooms:
    - room_ref_id: cell
      is_locked: true
`)
	if got := LockProblems(g); len(got) != 0 {
		t.Errorf("LockProblems() = %v, want none for the entry room", got)
	}
}

func TestLockProblemString(t *testing.T) {
	tests := []struct {
		p    LockProblem
		want string
	}{
		{LockProblem{Room: "tower", Kind: LockNoKey}, "tower: no key"},
		{LockProblem{Room: "study", Kind: LockKeyUnreachable, Keys: []world.ItemID{"a", "b"}}, "study: key unreachable (a, b)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAnalyze(t *testing.T) {
	g := mustParse(t, manorYAML)

	r := Analyze(g)
	if r.Rooms != 7 || r.Items != 3 {
		t.Errorf("Analyze() counts = %d rooms, %d items, want 7, 3", r.Rooms, r.Items)
	}
	if r.OK() {
		t.Error("OK() = true, want false")
	}
	if r.Farthest.Room != "vault" || r.Farthest.Distance != 2 {
		t.Errorf("Farthest = %+v, want vault at 2", r.Farthest)
	}

	var buf bytes.Buffer
	r.Log(debug.NewLogger(true, &buf))
	out := buf.String()
	for _, want := range []string{"7 rooms, 3 items", "room island cannot be reached", "locked room tower: no key"} {
		if !strings.Contains(out, want) {
			t.Errorf("Log() output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyze_Clean(t *testing.T) {
	g := mustParse(t, `
map:
  rooms:
    - room_ref_id: gate
      treasures:
        - id: key
          name: key
          unlocks: keep
    - room_ref_id: keep
      is_locked: true
  connections:
    gate:
      north: keep
    keep:
      south: gate
`)
	if r := Analyze(g); !r.OK() {
		t.Errorf("Analyze() = %+v, want OK", r)
	}
}
