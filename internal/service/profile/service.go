// Package profile implements username management: the debounced
// availability checker and the guarded profile upsert.
package profile

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/axiomforum/axiom-backend/internal/config"
	"github.com/axiomforum/axiom-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements profile reads, the per-account availability
// checker registry, and the guarded upsert.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	cfg      config.ForumConfig

	mu       sync.Mutex
	checkers map[uuid.UUID]*Checker
	lastSeen uuid.UUID
}

// NewService creates a new Profile service.
func NewService(logger *slog.Logger, profiles profileRepo, cfg config.ForumConfig) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
		cfg:      cfg,
		checkers: make(map[uuid.UUID]*Checker),
	}
}

// checker returns the account's checker, creating it on first use.
func (s *Service) checker(accountID uuid.UUID) *Checker {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.checkers[accountID]
	if !ok {
		c = NewChecker(s.log, s.profiles, "", s.cfg.UsernameCheckDelay, s.cfg.RequestTimeout)
		s.checkers[accountID] = c
	}
	return c
}

// HandleSession is the session subscription hook. When the active
// account changes, whether by sign-out or by a new session replacing
// the old one, the departing account's checker is evicted so no timer
// outlives its session.
func (s *Service) HandleSession(session *domain.Session) {
	s.mu.Lock()

	departed := s.lastSeen
	if session != nil {
		s.lastSeen = session.UserID
		if departed == uuid.Nil || departed == session.UserID {
			s.mu.Unlock()
			return
		}
	} else {
		s.lastSeen = uuid.Nil
	}

	c, ok := s.checkers[departed]
	if ok {
		delete(s.checkers, departed)
	}
	s.mu.Unlock()

	if ok {
		c.Stop()
		s.log.Info("checker evicted",
			slog.String("account_id", departed.String()))
	}
}
