package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnknownAuthor is the display name substituted when an author's profile
// row is missing (deleted account). Reads never fail on a missing join.
const UnknownAuthor = "Unknown"

// Profile is the public-facing metadata of an account. The ID is the
// account identity issued by the identity provider; a profile row is
// created implicitly the first time an account saves a username.
type Profile struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
