package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a forum thread's root post. AuthorID and CreatedAt are
// immutable; only Title and Content are ever rewritten, and only by
// the owning account.
type Topic struct {
	ID        uuid.UUID
	Title     string
	Content   string
	AuthorID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	// AuthorName is denormalized at read time from the author's profile.
	// UnknownAuthor when the profile row is missing.
	AuthorName string
}

// TopicUpdateParams carries the rewritable fields of a topic.
type TopicUpdateParams struct {
	Title   string
	Content string
}
