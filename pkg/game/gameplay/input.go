// Package gameplay runs player commands against a world graph and a player.
package gameplay

import (
	"dungeon/pkg/engine/input"
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/renderer"
	"dungeon/pkg/game/state"
)

// ResultKind tells the caller what to do with a Result
type ResultKind int

const (
	// ResultMessage appends Message to the transcript
	ResultMessage ResultKind = iota
	// ResultClear wipes the transcript; Message is empty
	ResultClear
)

// Result is the outcome of one command. Player mistakes are results too,
// never Go errors.
type Result struct {
	Kind   ResultKind
	Action input.Action

	// Message may hold ITEM{..}, ROOM{..} and ACTION{..} markup
	Message string

	// RoomImage is set when the player is shown a new room
	RoomImage   string
	RoomChanged bool
}

// Text returns the message without markup
func (r Result) Text() string {
	return renderer.StripMarkup(r.Message)
}

// IsClear reports whether the caller should clear its output
func (r Result) IsClear() bool {
	return r.Kind == ResultClear
}

type handler func(g *world.Graph, p *state.Player, in input.Intent) Result

var handlers = map[input.Action]handler{
	input.ActionMove:      handleMove,
	input.ActionLook:      handleLook,
	input.ActionTake:      handleTake,
	input.ActionDrop:      handleDrop,
	input.ActionInventory: handleInventory,
	input.ActionHelp:      handleHelp,
	input.ActionClear:     handleClear,
	input.ActionUnknown:   handleUnknown,
}

// Execute parses one line of player text and applies it
func Execute(g *world.Graph, p *state.Player, raw string) Result {
	return ProcessIntent(g, p, input.Parse(raw))
}

// ProcessIntent applies an already parsed intent and records the outcome in
// the player's transcript.
func ProcessIntent(g *world.Graph, p *state.Player, in input.Intent) Result {
	h, ok := handlers[in.Action]
	if !ok {
		h = handleUnknown
	}

	res := h(g, p, in)
	res.Action = in.Action

	if res.IsClear() {
		p.ClearMessages()
	} else {
		p.AddMessage(res.Message)
	}
	return res
}

func message(msg string) Result {
	return Result{Kind: ResultMessage, Message: msg}
}

func handleClear(*world.Graph, *state.Player, input.Intent) Result {
	return Result{Kind: ResultClear}
}
