package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cognisync/go-engine/internal/catalog"
	"github.com/cognisync/go-engine/internal/history"
	"github.com/cognisync/go-engine/internal/tactic"
)

// #region session

// Session owns all mutable analysis state for one behavioral subject: the
// rolling history, the selector with its rotation counters, and a sequence
// number for decision-log ordering. Analysis within a session is serialized
// by its mutex; distinct sessions never share state.
type Session struct {
	ID        string
	CreatedAt time.Time

	History  *history.Store
	Selector *tactic.Selector

	mu  sync.Mutex
	seq int64
}

// New creates a session with a fresh history and selector over the catalog.
func New(cat *catalog.Catalog) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		History:   history.NewStore(),
		Selector:  tactic.NewSelector(cat),
	}
}

// Lock acquires the session for one analysis pass.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// NextSeq returns the next frame sequence number, starting at 1. Callers
// hold the session lock.
func (s *Session) NextSeq() int64 {
	s.seq++
	return s.seq
}

// #endregion session

// #region manager

// Manager routes analysis requests to sessions by ID. Its lock guards only
// the routing map; per-session work happens under the session's own lock.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	catalog  *catalog.Catalog
}

// NewManager returns a manager that builds sessions over the given catalog.
func NewManager(cat *catalog.Catalog) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		catalog:  cat,
	}
}

// Create registers and returns a new session.
func (m *Manager) Create() *Session {
	s := New(m.catalog)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// GetOrCreate returns the session with the given ID, creating it if absent.
func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := New(m.catalog)
	s.ID = id
	m.sessions[id] = s
	return s
}

// Remove drops the session with the given ID.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len reports how many sessions are registered.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// #endregion manager
