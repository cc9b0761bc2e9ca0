package gameplay

import (
	"fmt"
	"strings"

	"dungeon/pkg/engine/input"
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/messages"
	"dungeon/pkg/game/state"
)

// unknownReplies rotate so that repeated nonsense does not read the same
var unknownReplies = []string{"UNKNOWN_1", "UNKNOWN_2", "UNKNOWN_3", "UNKNOWN_4"}

// helpGroups lists actions under their headings with the verb shown first
var helpGroups = []struct {
	title   string
	entries []helpEntry
}{
	{"HELP_GENERIC", []helpEntry{
		{input.ActionMove, "move"},
		{input.ActionLook, "look"},
		{input.ActionHelp, "help"},
	}},
	{"HELP_INVENTORY", []helpEntry{
		{input.ActionTake, "take"},
		{input.ActionDrop, "drop"},
		{input.ActionInventory, "inventory"},
	}},
	{"HELP_DISPLAY", []helpEntry{
		{input.ActionClear, "clear"},
	}},
}

type helpEntry struct {
	action  input.Action
	primary string
}

var helpExamples = []string{
	"move north",
	"n",
	"look",
	"take sword",
	"drop sword",
	"inventory",
}

func handleHelp(*world.Graph, *state.Player, input.Intent) Result {
	return message(HelpText())
}

// HelpText lists every command grouped by purpose, with aliases and examples
func HelpText() string {
	var b strings.Builder
	b.WriteString(messages.Get("HELP_TITLE"))
	b.WriteString("\n")

	for _, group := range helpGroups {
		b.WriteString("\n")
		b.WriteString(messages.Get(group.title))
		b.WriteString("\n")
		for _, e := range group.entries {
			verb := "ACTION{" + e.primary + "}"
			aliases := withoutWord(input.Vocabulary(e.action), e.primary)
			if len(aliases) == 0 {
				b.WriteString(messages.Get("HELP_LINE_SINGLE", verb))
			} else {
				b.WriteString(messages.Get("HELP_LINE", verb, strings.Join(aliases, ", ")))
			}
			b.WriteString("\n")
		}
	}

	dirs := make([]string, 0, len(world.AllDirections()))
	for _, d := range world.AllDirections() {
		dirs = append(dirs, fmt.Sprintf("%s (%s)", d, d.Alias()))
	}
	b.WriteString("\n")
	b.WriteString(messages.Get("HELP_DIRECTIONS", strings.Join(dirs, ", ")))
	b.WriteString("\n\n")

	b.WriteString(messages.Get("HELP_EXAMPLES"))
	for _, ex := range helpExamples {
		b.WriteString("\n")
		b.WriteString(messages.Get("HELP_LINE_SINGLE", "ACTION{"+ex+"}"))
	}
	return b.String()
}

func handleUnknown(_ *world.Graph, p *state.Player, _ input.Intent) Result {
	n := p.NextUnknown()
	reply := messages.Get(unknownReplies[n%len(unknownReplies)])
	return message(reply + " " + messages.Get("UNKNOWN_HINT"))
}

func withoutWord(words []string, skip string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w != skip {
			out = append(out, w)
		}
	}
	return out
}
