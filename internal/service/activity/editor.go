package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/axiomforum/axiom-backend/internal/domain"
	"github.com/axiomforum/axiom-backend/pkg/ctxutil"
)

// BeginEditInput holds the snapshot of the item being opened for edit.
type BeginEditInput struct {
	Kind    ItemKind
	ID      uuid.UUID
	Title   string
	Content string
}

// Validate checks all fields and collects all errors.
func (i *BeginEditInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind != KindTopic && i.Kind != KindReply {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be topic or reply"})
	}
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SaveInput holds the edited values to commit.
type SaveInput struct {
	Title   string
	Content string
}

// BeginEdit snapshots the item's editable fields into the account's
// scratch buffer and makes it the sole edit target. A prior unsaved
// edit is discarded without ceremony; last intent wins.
func (s *Service) BeginEdit(ctx context.Context, input BeginEditInput) error {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.edits[session.UserID] = &Edit{
		Kind:    input.Kind,
		ID:      input.ID,
		Title:   input.Title,
		Content: input.Content,
	}
	s.mu.Unlock()

	return nil
}

// CurrentEdit returns the account's edit in progress, or nil.
func (s *Service) CurrentEdit(ctx context.Context) (*Edit, error) {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	edit, ok := s.edits[session.UserID]
	if !ok {
		return nil, nil
	}
	copied := *edit
	return &copied, nil
}

// Save validates the edited values and commits them to the store.
//
// Rejections (empty content, or empty title on a topic) never reach
// the store. A store failure keeps the edit open with its scratch
// intact; there is no automatic retry. Success exits edit mode and
// re-reads both authored lists rather than patching them in place.
func (s *Service) Save(ctx context.Context, input SaveInput) (*Activity, error) {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	edit, active := s.edits[session.UserID]
	if active {
		// The scratch buffer tracks the latest edited values even if
		// this save fails.
		edit.Title = input.Title
		edit.Content = input.Content
		copied := *edit
		edit = &copied
	}
	s.mu.Unlock()

	if !active {
		return nil, fmt.Errorf("no item is being edited: %w", domain.ErrConflict)
	}

	content := strings.TrimSpace(edit.Content)
	if content == "" {
		return nil, domain.NewValidationError("content", "required")
	}
	title := strings.TrimSpace(edit.Title)
	if edit.Kind == KindTopic && title == "" {
		return nil, domain.NewValidationError("title", "required")
	}

	var err error
	switch edit.Kind {
	case KindTopic:
		_, err = s.topics.Update(ctx, session.UserID, edit.ID, domain.TopicUpdateParams{
			Title:   title,
			Content: content,
		})
	case KindReply:
		_, err = s.replies.Update(ctx, session.UserID, edit.ID, content)
	}
	if err != nil {
		return nil, fmt.Errorf("save %s: %w", edit.Kind, err)
	}

	s.mu.Lock()
	delete(s.edits, session.UserID)
	s.mu.Unlock()

	s.log.InfoContext(ctx, "edit saved",
		slog.String("kind", string(edit.Kind)),
		slog.String("item_id", edit.ID.String()),
		slog.String("account_id", session.UserID.String()))

	return s.fetch(ctx, session.UserID)
}

// Cancel discards the scratch buffer and exits edit mode. Cancelling
// with nothing under edit is a no-op.
func (s *Service) Cancel(ctx context.Context) error {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.mu.Lock()
	delete(s.edits, session.UserID)
	s.mu.Unlock()

	return nil
}
