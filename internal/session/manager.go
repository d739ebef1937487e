// Package session holds the process-wide view of signed-in sessions
// delivered by the identity provider. The manager is an explicit value
// injected at the composition root, not a singleton: it owns the
// current-session reference and notifies subscribers on transitions.
package session

import (
	"sync"

	"github.com/axiomforum/axiom-backend/internal/domain"
)

// Manager tracks the current session and delivers sign-in/sign-out
// transitions to subscribers. Safe for concurrent use.
type Manager struct {
	mu      sync.Mutex
	current *domain.Session
	subs    map[int]func(*domain.Session)
	nextSub int
}

// NewManager creates a signed-out manager.
func NewManager() *Manager {
	return &Manager{subs: make(map[int]func(*domain.Session))}
}

// Current returns the current session, or nil when signed out.
func (m *Manager) Current() *domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Subscribe registers fn for session transitions. fn receives the new
// session (nil on sign-out). The returned cancel func removes the
// subscription; calling it more than once is harmless.
func (m *Manager) Subscribe(fn func(*domain.Session)) (cancel func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Set records a sign-in (or session refresh) and notifies subscribers.
func (m *Manager) Set(s domain.Session) {
	m.publish(&s)
}

// SignOut clears the session and notifies subscribers with nil.
// Signing out while already signed out is a no-op.
func (m *Manager) SignOut() {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()
	m.publish(nil)
}

// publish swaps the current session and invokes subscribers outside
// the lock so a callback may call back into the manager.
func (m *Manager) publish(s *domain.Session) {
	m.mu.Lock()
	m.current = s
	fns := make([]func(*domain.Session), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
