// Package activity implements the "my activity" view: an account's
// authored topics and replies, and the single-item edit flow over them.
package activity

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/axiomforum/axiom-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type topicRepo interface {
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Topic, error)
	Update(ctx context.Context, authorID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
}

type replyRepo interface {
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Reply, error)
	Update(ctx context.Context, authorID, replyID uuid.UUID, content string) (*domain.Reply, error)
}

// ---------------------------------------------------------------------------
// Edit state
// ---------------------------------------------------------------------------

// ItemKind tags which entity an edit targets.
type ItemKind string

const (
	KindTopic ItemKind = "topic"
	KindReply ItemKind = "reply"
)

// Edit is the scratch buffer for the one item under edit. Title is
// meaningful only for topics.
type Edit struct {
	Kind    ItemKind
	ID      uuid.UUID
	Title   string
	Content string
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the activity view and its editor. At most one
// item per account is ever in editing state; starting a new edit
// silently discards the previous scratch buffer.
type Service struct {
	log     *slog.Logger
	topics  topicRepo
	replies replyRepo

	mu       sync.Mutex
	edits    map[uuid.UUID]*Edit
	lastSeen uuid.UUID
}

// NewService creates a new Activity service.
func NewService(logger *slog.Logger, topics topicRepo, replies replyRepo) *Service {
	return &Service{
		log:     logger.With("service", "activity"),
		topics:  topics,
		replies: replies,
		edits:   make(map[uuid.UUID]*Edit),
	}
}

// HandleSession is the session subscription hook. When the active
// account changes, whether by sign-out or by a new session replacing
// the old one, the departing account's unsaved scratch buffer is
// discarded.
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

	_, had := s.edits[departed]
	delete(s.edits, departed)
	s.mu.Unlock()

	if had {
		s.log.Info("unsaved edit discarded",
			slog.String("account_id", departed.String()))
	}
}
