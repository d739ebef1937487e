package forum

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/axiomforum/axiom-backend/internal/domain"
	"github.com/axiomforum/axiom-backend/pkg/ctxutil"
)

// CreateReply posts a reply to an existing topic. The insert and the
// parent thread's recency bump commit atomically. Replying to a topic
// deleted in the meantime surfaces domain.ErrNotFound from the store's
// foreign key, not a write failure.
func (s *Service) CreateReply(ctx context.Context, input CreateReplyInput) (*domain.Reply, error) {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Reply
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.replies.Create(ctx, &domain.Reply{
			TopicID:  input.TopicID,
			Content:  strings.TrimSpace(input.Content),
			AuthorID: session.UserID,
		})
		if err != nil {
			return err
		}
		return s.topics.Touch(ctx, input.TopicID)
	})
	if err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}

	s.log.InfoContext(ctx, "reply created",
		slog.String("reply_id", created.ID.String()),
		slog.String("topic_id", input.TopicID.String()),
		slog.String("author_id", session.UserID.String()))

	return created, nil
}
