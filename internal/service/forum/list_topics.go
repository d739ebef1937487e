package forum

import (
	"context"
	"fmt"

	"github.com/axiomforum/axiom-backend/internal/domain"
)

// ListTopics returns every topic on the board, newest first, each row
// carrying the author's username.
func (s *Service) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}
