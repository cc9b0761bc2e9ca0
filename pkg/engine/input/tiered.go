package input

import (
	"sort"
	"strings"

	"github.com/zyedidia/generic/trie"

	"dungeon/pkg/engine/world"
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionUnknown Action = iota

	ActionMove
	ActionLook
	ActionTake
	ActionDrop
	ActionInventory

	// Meta / UI
	ActionHelp
	ActionClear
)

// AllActions lists every action except ActionUnknown, in help order
func AllActions() []Action {
	return []Action{ActionMove, ActionLook, ActionTake, ActionDrop, ActionInventory, ActionHelp, ActionClear}
}

// Intent is what one line of player text asks for. It is built from the
// text alone; resolving objects against the world happens later.
type Intent struct {
	Action Action

	// Verb is the word that selected the action ("go", "n", "grab")
	Verb string

	Direction    world.Direction
	HasDirection bool

	// Object is the rest of the command with filler words removed
	Object string

	Tokens []string
}

// bindings maps verbs to actions. Multiple verbs may point to the same Action.
// Direction words are added by init and always mean ActionMove.
var bindings = map[string]Action{
	// Movement
	"move":   ActionMove,
	"go":     ActionMove,
	"travel": ActionMove,
	"walk":   ActionMove,

	// Looking
	"look":    ActionLook,
	"l":       ActionLook,
	"examine": ActionLook,
	"x":       ActionLook,

	// Items
	"take":  ActionTake,
	"get":   ActionTake,
	"grab":  ActionTake,
	"pick":  ActionTake,
	"drop":  ActionDrop,
	"put":   ActionDrop,
	"leave": ActionDrop,

	"inventory": ActionInventory,
	"inv":       ActionInventory,
	"i":         ActionInventory,

	// Help
	"help":     ActionHelp,
	"?":        ActionHelp,
	"commands": ActionHelp,

	// Display
	"clear": ActionClear,
	"cls":   ActionClear,
}

var fillerWords = map[string]bool{
	"the":    true,
	"a":      true,
	"an":     true,
	"to":     true,
	"at":     true,
	"around": true,
	"some":   true,
}

// vocabulary holds the non-direction verbs for unique-prefix lookups
var vocabulary = trie.New[Action]()

func init() {
	for verb, act := range bindings {
		vocabulary.Put(verb, act)
	}
	for _, word := range world.DirectionWords() {
		bindings[word] = ActionMove
	}
}

// Tokenize trims, lower-cases and splits player text on whitespace
func Tokenize(raw string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
}

// Parse turns a line of player text into an Intent. It never fails: text it
// cannot make sense of yields ActionUnknown.
func Parse(raw string) Intent {
	tokens := Tokenize(raw)
	if len(tokens) == 0 {
		return Intent{Action: ActionUnknown}
	}

	verb, rest := tokens[0], tokens[1:]
	intent := Intent{Verb: verb, Tokens: tokens}

	// A bare direction is a move in that direction.
	if dir, ok := world.ParseDirection(verb); ok {
		intent.Action = ActionMove
		intent.Direction = dir
		intent.HasDirection = true
		return intent
	}

	intent.Action = resolveVerb(verb)

	switch intent.Action {
	case ActionMove:
		for _, tok := range rest {
			if dir, ok := world.ParseDirection(tok); ok {
				intent.Direction = dir
				intent.HasDirection = true
				break
			}
		}
	case ActionTake:
		// "pick up the lamp"
		if verb == "pick" && len(rest) > 0 && rest[0] == "up" {
			rest = rest[1:]
		}
	}

	intent.Object = objectPhrase(rest)
	return intent
}

// resolveVerb looks a verb up exactly, then as an unambiguous prefix of the
// known vocabulary ("inv" or "hel"). Anything else is unknown.
func resolveVerb(verb string) Action {
	if act, ok := bindings[verb]; ok {
		return act
	}

	candidates := vocabulary.KeysWithPrefix(verb)
	if len(candidates) == 0 {
		return ActionUnknown
	}
	act, _ := vocabulary.Get(candidates[0])
	for _, c := range candidates[1:] {
		if other, _ := vocabulary.Get(c); other != act {
			return ActionUnknown
		}
	}
	return act
}

func objectPhrase(tokens []string) string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if fillerWords[tok] {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionLook:
		return "Look"
	case ActionTake:
		return "Take"
	case ActionDrop:
		return "Drop"
	case ActionInventory:
		return "Inventory"
	case ActionHelp:
		return "Help"
	case ActionClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer
func (a Action) String() string {
	return strings.ToLower(ActionName(a))
}

// Vocabulary returns the verbs bound to an action, sorted, without direction words.
func Vocabulary(a Action) []string {
	var verbs []string
	for _, verb := range vocabulary.Keys() {
		if act, _ := vocabulary.Get(verb); act == a {
			verbs = append(verbs, verb)
		}
	}
	sort.Strings(verbs)
	return verbs
}
