package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager tracks live in-memory sessions by id. Sessions are never written
// to disk; a full restart loses in-flight games, which is acceptable for a
// single-evening event.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	logger   zerolog.Logger
}

// NewManager creates an empty session manager.
func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		logger:   logger.With().Str("component", "session_manager").Logger(),
	}
}

// Create registers a new session and returns it.
func (m *Manager) Create() *Session {
	sess := New()
	m.mu.Lock()
	m.sessions[sess.ID()] = sess
	m.mu.Unlock()
	m.logger.Info().Str("session_id", sess.ID().String()).Msg("session created")
	return sess
}

// Get returns the session for an id, or nil.
func (m *Manager) Get(id uuid.UUID) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Remove drops a session from tracking.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		m.logger.Info().Str("session_id", id.String()).Msg("session removed")
	}
}

// Count returns the number of tracked sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
