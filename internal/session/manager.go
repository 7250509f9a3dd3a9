package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session: not found")

// Manager owns live practice sessions, keyed by UUID.
type Manager struct {
	mu       sync.RWMutex
	gateway  Gateway
	complete OnComplete
	sessions map[string]*Session
}

func NewManager(gateway Gateway, complete OnComplete) *Manager {
	return &Manager{
		gateway:  gateway,
		complete: complete,
		sessions: map[string]*Session{},
	}
}

// Create starts a fresh session in selection mode and returns its ID.
func (m *Manager) Create() (string, *Session) {
	id := uuid.NewString()
	s := New(m.gateway, m.complete)
	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return id, s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete drops the session entirely. Responses still in flight are discarded
// by the session's own reset.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Reset()
	}
}
