package profile

import (
	"context"
	"strings"

	"github.com/axiomforum/axiom-backend/internal/domain"
	"github.com/axiomforum/axiom-backend/pkg/ctxutil"
)

// CheckUsername feeds one input change into the account's checker and
// reports the state as of this call. The lookup itself is debounced
// and settles asynchronously; callers poll for the outcome.
func (s *Service) CheckUsername(ctx context.Context, username string) (CheckState, error) {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return StateIdle, domain.ErrUnauthorized
	}

	c := s.checker(session.UserID)
	c.Observe(strings.TrimSpace(username))

	return c.State(), nil
}
