// Package forum implements topic and reply reading and composition.
package forum

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/axiomforum/axiom-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type topicRepo interface {
	List(ctx context.Context) ([]*domain.Topic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	Touch(ctx context.Context, id uuid.UUID) error
}

type replyRepo interface {
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.Reply, error)
	Create(ctx context.Context, r *domain.Reply) (*domain.Reply, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the forum read and compose logic.
type Service struct {
	log     *slog.Logger
	topics  topicRepo
	replies replyRepo
	tx      txRunner
}

// NewService creates a new Forum service.
func NewService(logger *slog.Logger, topics topicRepo, replies replyRepo, tx txRunner) *Service {
	return &Service{
		log:     logger.With("service", "forum"),
		topics:  topics,
		replies: replies,
		tx:      tx,
	}
}
