package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory
type MemoryStore struct {
	sessions map[string]entry
	ttl      time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

// NewMemoryStore creates an in-memory store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns a copy of the session stored under token
func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.RLock()
	e, exists := m.sessions[token]
	m.mu.RUnlock()

	if !exists {
		return nil, ErrNotFound
	}
	if !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	s := e.session
	return &s, nil
}

// Save stores s and restarts its TTL. Expired sessions are dropped on the way.
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for token, e := range m.sessions {
		if !now.Before(e.expiresAt) {
			delete(m.sessions, token)
		}
	}
	m.sessions[s.Token] = entry{session: *s, expiresAt: now.Add(m.ttl)}
	return nil
}

// Delete removes the session
func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}
