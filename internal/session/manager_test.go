package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiomforum/axiom-backend/internal/domain"
)

func TestManager_CurrentStartsNil(t *testing.T) {
	t.Parallel()

	m := NewManager()
	assert.Nil(t, m.Current())
}

func TestManager_SetAndCurrent(t *testing.T) {
	t.Parallel()

	m := NewManager()
	s := domain.Session{UserID: uuid.New(), Email: "a@example.com"}

	m.Set(s)

	got := m.Current()
	require.NotNil(t, got)
	assert.Equal(t, s, *got)
}

func TestManager_SubscribeDeliversTransitions(t *testing.T) {
	t.Parallel()

	m := NewManager()

	var got []*domain.Session
	m.Subscribe(func(s *domain.Session) { got = append(got, s) })

	s := domain.Session{UserID: uuid.New()}
	m.Set(s)
	m.SignOut()

	require.Len(t, got, 2)
	require.NotNil(t, got[0])
	assert.Equal(t, s.UserID, got[0].UserID)
	assert.Nil(t, got[1])
}

func TestManager_SignOutWhileSignedOutIsNoop(t *testing.T) {
	t.Parallel()

	m := NewManager()

	calls := 0
	m.Subscribe(func(*domain.Session) { calls++ })

	m.SignOut()
	assert.Zero(t, calls)
}

func TestManager_CancelStopsDelivery(t *testing.T) {
	t.Parallel()

	m := NewManager()

	calls := 0
	cancel := m.Subscribe(func(*domain.Session) { calls++ })

	m.Set(domain.Session{UserID: uuid.New()})
	cancel()
	cancel() // second cancel is harmless
	m.SignOut()

	assert.Equal(t, 1, calls)
}

func TestManager_SubscriberMayReenter(t *testing.T) {
	t.Parallel()

	m := NewManager()

	var seen *domain.Session
	m.Subscribe(func(s *domain.Session) {
		// Reading back from inside the callback must not deadlock.
		seen = m.Current()
		_ = s
	})

	m.Set(domain.Session{UserID: uuid.New()})
	require.NotNil(t, seen)
}
