package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/axiomforum/axiom-backend/internal/domain"
	"github.com/axiomforum/axiom-backend/pkg/ctxutil"
)

// Activity is an account's authored content, both lists newest first.
type Activity struct {
	Topics  []*domain.Topic
	Replies []*domain.Reply
}

// Fetch loads the signed-in account's topics and replies. The two
// queries run concurrently and both settle before the call returns.
func (s *Service) Fetch(ctx context.Context) (*Activity, error) {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.fetch(ctx, session.UserID)
}

func (s *Service) fetch(ctx context.Context, accountID uuid.UUID) (*Activity, error) {
	var act Activity

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		topics, err := s.topics.ListByAuthor(gctx, accountID)
		if err != nil {
			return fmt.Errorf("list authored topics: %w", err)
		}
		act.Topics = topics
		return nil
	})
	g.Go(func() error {
		replies, err := s.replies.ListByAuthor(gctx, accountID)
		if err != nil {
			return fmt.Errorf("list authored replies: %w", err)
		}
		act.Replies = replies
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &act, nil
}
