package session

import (
	"context"
	"sync"

	"github.com/ydx-lana/assessad/internal/shuffle"
	syncx "github.com/ydx-lana/assessad/internal/sync"
)

// Manager keeps at most one live session per user id. Sessions hold the
// transient state (streak, pending writes); everything durable lives in the
// profile document.
type Manager struct {
	mu       sync.Mutex
	repo     *ProfileRepo
	gen      *shuffle.Generator
	events   syncx.Log
	sessions map[string]*Session
}

func NewManager(repo *ProfileRepo, gen *shuffle.Generator, events syncx.Log) *Manager {
	return &Manager{
		repo:     repo,
		gen:      gen,
		events:   events,
		sessions: map[string]*Session{},
	}
}

// Session returns the live session for the user, starting one if needed.
func (m *Manager) Session(ctx context.Context, userID, username string) (*Session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	// Start outside the lock: it does store reads and may be slow.
	s, err := Start(ctx, userID, username, m.repo, m.gen, m.events)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[userID]; ok {
		return existing, nil
	}
	m.sessions[userID] = s
	return s, nil
}

// Drop discards the live session on sign-out. Durable state is unaffected.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
