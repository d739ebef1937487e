package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/axiomforum/axiom-backend/internal/domain"
	"github.com/axiomforum/axiom-backend/pkg/ctxutil"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 32
)

// UpdateProfileInput holds the parameters for saving a username.
type UpdateProfileInput struct {
	Username string
}

// Validate checks all fields and collects all errors.
func (i *UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	switch {
	case username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case utf8.RuneCountInString(username) < usernameMinLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too short (min 3)"})
	case utf8.RuneCountInString(username) > usernameMaxLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long (max 32)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProfile writes the username as an insert-or-replace keyed on
// the account identity.
//
// The checker gate is advisory: a save is refused while the checker
// reports Taken or still Checking, but an Available verdict proves
// nothing. Two accounts can pass the lookup and race to the same
// username; the store's unique constraint is the arbiter, and its
// violation surfaces as domain.ErrAlreadyExists with no retry.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	c := s.checker(session.UserID)

	if username != c.Confirmed() {
		switch c.State() {
		case StateTaken:
			return nil, domain.NewValidationError("username", "already taken")
		case StateChecking:
			return nil, domain.NewValidationError("username", "availability check in progress")
		}
	}

	saved, err := s.profiles.Upsert(ctx, &domain.Profile{
		ID:        session.UserID,
		Username:  username,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	c.SetConfirmed(saved.Username)

	s.log.InfoContext(ctx, "profile saved",
		slog.String("account_id", session.UserID.String()),
		slog.String("username", saved.Username))

	return saved, nil
}
