package input

import (
	"io"
	"strings"
	"testing"

	"dungeon/pkg/engine/world"
)

func TestParse_Verbs(t *testing.T) {
	tests := []struct {
		raw  string
		want Action
	}{
		{"look", ActionLook},
		{"  LOOK around ", ActionLook},
		{"l", ActionLook},
		{"take sword", ActionTake},
		{"get the lamp", ActionTake},
		{"drop blade", ActionDrop},
		{"inventory", ActionInventory},
		{"inv", ActionInventory},
		{"i", ActionInventory},
		{"help", ActionHelp},
		{"?", ActionHelp},
		{"clear", ActionClear},
		{"go north", ActionMove},
		{"dance", ActionUnknown},
		{"", ActionUnknown},
		{"   ", ActionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Parse(tt.raw).Action; got != tt.want {
				t.Errorf("Parse(%q).Action = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParse_DirectionAliasesAreMoves(t *testing.T) {
	for _, raw := range []string{"n", "N", "north", "North", "go n", "move NORTH", "travel to the north"} {
		got := Parse(raw)
		if got.Action != ActionMove || !got.HasDirection || got.Direction != world.North {
			t.Errorf("Parse(%q) = %+v, want a move north", raw, got)
		}
	}
}

func TestParse_MoveWithoutDirection(t *testing.T) {
	got := Parse("go")
	if got.Action != ActionMove {
		t.Fatalf("Parse(go).Action = %v, want move", got.Action)
	}
	if got.HasDirection {
		t.Errorf("Parse(go).HasDirection = true, want false")
	}
}

func TestParse_ObjectPhrase(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"take sword", "sword"},
		{"take the rusty sword", "rusty sword"},
		{"pick up the lamp", "lamp"},
		{"drop a Blade", "blade"},
		{"take", ""},
	}
	for _, tt := range tests {
		if got := Parse(tt.raw).Object; got != tt.want {
			t.Errorf("Parse(%q).Object = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParse_UniquePrefix(t *testing.T) {
	tests := []struct {
		raw  string
		want Action
	}{
		{"inve", ActionInventory},
		{"hel", ActionHelp},
		{"exa", ActionLook},
		{"dr sword", ActionDrop},
		// "c" could be clear, cls or commands
		{"c", ActionUnknown},
		// "t" could be take or travel
		{"t", ActionUnknown},
	}
	for _, tt := range tests {
		if got := Parse(tt.raw).Action; got != tt.want {
			t.Errorf("Parse(%q).Action = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestVocabulary(t *testing.T) {
	got := strings.Join(Vocabulary(ActionInventory), ",")
	if got != "i,inv,inventory" {
		t.Errorf("Vocabulary(inventory) = %s, want i,inv,inventory", got)
	}
	for _, verb := range Vocabulary(ActionMove) {
		if _, ok := world.ParseDirection(verb); ok {
			t.Errorf("Vocabulary(move) contains direction word %q", verb)
		}
	}
}

func TestPlainReader_ReadLine(t *testing.T) {
	var prompts strings.Builder
	r := NewPlainReader(strings.NewReader("look\r\ngo north\nlast"), &prompts, "> ")

	for _, want := range []string{"look", "go north", "last"} {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() error = %v", err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}
	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine() at end error = %v, want io.EOF", err)
	}
	if prompts.String() != "> > > > " {
		t.Errorf("prompts written = %q, want four prompts", prompts.String())
	}
}
