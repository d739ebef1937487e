package forum

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/axiomforum/axiom-backend/internal/domain"
)

// TopicThread is a topic and its full reply thread.
type TopicThread struct {
	Topic   *domain.Topic
	Replies []*domain.Reply
}

// GetTopic loads one topic and all its replies. The two queries run
// concurrently and both settle before the call returns; replies come
// back oldest first while topic listings are newest first.
func (s *Service) GetTopic(ctx context.Context, id uuid.UUID) (*TopicThread, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	var thread TopicThread

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.topics.GetByID(gctx, id)
		if err != nil {
			return fmt.Errorf("get topic: %w", err)
		}
		thread.Topic = t
		return nil
	})
	g.Go(func() error {
		replies, err := s.replies.ListByTopic(gctx, id)
		if err != nil {
			return fmt.Errorf("list replies: %w", err)
		}
		thread.Replies = replies
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &thread, nil
}
