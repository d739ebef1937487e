package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/axiomforum/axiom-backend/internal/domain"
	"github.com/axiomforum/axiom-backend/pkg/ctxutil"
)

// GetProfile returns the signed-in account's profile. Accounts that
// never saved one get domain.ErrNotFound. A successful read seeds the
// checker's skip sentinel when it has none yet.
func (s *Service) GetProfile(ctx context.Context) (*domain.Profile, error) {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	c := s.checker(session.UserID)
	if c.Confirmed() == "" {
		c.SetConfirmed(p.Username)
	}

	return p, nil
}
