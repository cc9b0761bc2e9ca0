package dungeons

import (
	"testing"

	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/setup"
)

func TestCrypt(t *testing.T) {
	g, err := world.Parse(Crypt)
	if err != nil {
		t.Fatalf("Parse(Crypt) error = %v", err)
	}
	if got := g.Entry(); got != "lychgate" {
		t.Errorf("Entry() = %q, want lychgate", got)
	}
	if r := setup.Analyze(g); !r.OK() {
		t.Errorf("Analyze() = %+v, want every room reachable and every lock openable", r)
	}
}
