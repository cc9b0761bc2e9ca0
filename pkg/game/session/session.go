// Package session runs independent games against a shared world graph.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"dungeon/pkg/engine/debug"
	"dungeon/pkg/engine/layout"
	"dungeon/pkg/engine/observability"
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/gameplay"
	"dungeon/pkg/game/renderer"
	"dungeon/pkg/game/state"
)

const tracerName = "dungeon/session"

// Session is one player's game. Commands on a session are serialised; the
// graph is only read, so any number of sessions may share it.
type Session struct {
	ID uuid.UUID

	mu     sync.Mutex
	graph  *world.Graph
	player *state.Player
	tracer trace.Tracer
	logger *debug.Logger
}

// Option configures a Session
type Option func(*Session)

// WithTracer records a span for every command
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) {
		s.tracer = t
	}
}

// WithLogger sets the logger used for map anomalies
func WithLogger(l *debug.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New starts a session in the graph's entry room
func New(g *world.Graph, opts ...Option) *Session {
	s := &Session{
		ID:     uuid.New(),
		graph:  g,
		player: state.NewPlayer(g),
		tracer: noop.NewTracerProvider().Tracer(tracerName),
		logger: debug.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Graph returns the shared world graph
func (s *Session) Graph() *world.Graph {
	return s.graph
}

// Welcome returns the greeting for a new player
func (s *Session) Welcome(ctx context.Context) gameplay.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, span := s.start(ctx, "session.welcome")
	defer span.End()

	return gameplay.Welcome(s.graph, s.player)
}

// Execute runs one line of player text
func (s *Session) Execute(ctx context.Context, raw string) gameplay.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, span := s.start(ctx, "session.execute")
	defer span.End()

	from := s.player.CurrentRoom
	res := gameplay.Execute(s.graph, s.player, raw)

	span.SetAttributes(
		attribute.String("command.action", res.Action.String()),
		attribute.String("command.room", string(from)),
		attribute.String("command.result", resultKind(res)),
	)
	if res.RoomChanged {
		span.SetAttributes(attribute.String("command.destination", string(s.player.CurrentRoom)))
	}
	if err := s.player.Check(s.graph); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warnf("session %s: %v", s.ID, err)
	}
	return res
}

func (s *Session) start(ctx context.Context, name string) (context.Context, trace.Span) {
	ctx = observability.WithSessionID(ctx, s.ID.String())
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("session.id", s.ID.String()),
	))
}

func resultKind(res gameplay.Result) string {
	if res.IsClear() {
		return "clear"
	}
	return "message"
}

// CurrentRoom returns the room the player stands in
func (s *Session) CurrentRoom() world.RoomID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.CurrentRoom
}

// Inventory returns the carried items in pickup order
func (s *Session) Inventory() []world.ItemID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]world.ItemID(nil), s.player.Inventory...)
}

// InventoryNames returns the names of the carried items in pickup order
func (s *Session) InventoryNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.player.Inventory))
	for _, id := range s.player.Inventory {
		if item, ok := s.graph.Item(id); ok {
			names = append(names, item.Name)
		}
	}
	return names
}

// Visited returns the visited rooms, sorted
func (s *Session) Visited() []world.RoomID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.VisitedRooms()
}

// ItemsIn returns the items lying in a room for this session
func (s *Session) ItemsIn(room world.RoomID) []world.ItemID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.ItemsIn(room)
}

// Transcript returns the recorded messages, oldest first
func (s *Session) Transcript() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.player.Messages...)
}

// MapOptions tune Map
type MapOptions struct {
	Placeholders bool
	Title        string
}

// Map lays out the visited rooms from the entry room and builds a scene
// with the player's room marked.
func (s *Session) Map(opts MapOptions) (*layout.Result, *renderer.Scene) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lay := layout.Layout(s.graph, s.player.Visited, s.graph.Entry(), layout.Options{
		Placeholders: opts.Placeholders,
		Logger:       s.logger,
	})
	scene := renderer.BuildScene(lay, s.graph, s.player.Visited, renderer.SceneOptions{
		Current: s.player.CurrentRoom,
		Title:   opts.Title,
	})
	return lay, scene
}
