package forum

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/axiomforum/axiom-backend/internal/domain"
	"github.com/axiomforum/axiom-backend/pkg/ctxutil"
)

// CreateTopic starts a new topic authored by the signed-in account.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.topics.Create(ctx, &domain.Topic{
		Title:    strings.TrimSpace(input.Title),
		Content:  strings.TrimSpace(input.Content),
		AuthorID: session.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", created.ID.String()),
		slog.String("author_id", session.UserID.String()))

	return created, nil
}
