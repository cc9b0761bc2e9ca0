package session

import (
	"sync"

	"github.com/google/uuid"

	"dungeon/pkg/engine/world"
)

// Manager keeps the live sessions by id
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	opts     []Option
}

// NewManager creates a registry; opts are applied to every session it creates
func NewManager(opts ...Option) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		opts:     opts,
	}
}

// Create starts and registers a session on g
func (m *Manager) Create(g *world.Graph) *Session {
	s := New(g, m.opts...)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

// Get looks up a session
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove ends a session; it reports whether the session existed
func (m *Manager) Remove(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
