package domain

import "github.com/google/uuid"

// Session is the signed-in state issued by the identity provider.
// The service treats it as opaque except for the account identity.
type Session struct {
	UserID uuid.UUID
	Email  string
}
