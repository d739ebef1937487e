package forum

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/axiomforum/axiom-backend/internal/domain"
)

const (
	titleMinLen   = 5
	titleMaxLen   = 100
	contentMinLen = 10
)

// CreateTopicInput holds the parameters for starting a new topic.
type CreateTopicInput struct {
	Title   string
	Content string
}

// Validate checks all fields and collects all errors.
func (i *CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	switch {
	case title == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case utf8.RuneCountInString(title) < titleMinLen:
		errs = append(errs, domain.FieldError{Field: "title", Message: "too short (min 5)"})
	case utf8.RuneCountInString(title) > titleMaxLen:
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 100)"})
	}

	if err := validateContent(i.Content); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateReplyInput holds the parameters for posting a reply to a topic.
type CreateReplyInput struct {
	TopicID uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors.
func (i *CreateReplyInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if err := validateContent(i.Content); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateContent(content string) *domain.FieldError {
	trimmed := strings.TrimSpace(content)
	switch {
	case trimmed == "":
		return &domain.FieldError{Field: "content", Message: "required"}
	case utf8.RuneCountInString(trimmed) < contentMinLen:
		return &domain.FieldError{Field: "content", Message: "too short (min 10)"}
	}
	return nil
}
