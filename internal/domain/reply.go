package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reply is a response attached to a topic, ordered chronologically
// within it. AuthorID, TopicID, and CreatedAt are immutable; only
// Content is rewritten, and only by the owning account.
type Reply struct {
	ID        uuid.UUID
	TopicID   uuid.UUID
	Content   string
	AuthorID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	// AuthorName is denormalized at read time from the author's profile.
	// UnknownAuthor when the profile row is missing.
	AuthorName string
}
