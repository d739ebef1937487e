// Package auth is the boundary to the external identity provider.
// Token issuance happens elsewhere; this service only verifies the
// HS256 access tokens the provider signs and extracts the account
// identity from them.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/axiomforum/axiom-backend/internal/domain"
)

// Verifier validates access tokens issued by the identity provider.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a token verifier.
// secret must be at least 32 characters for HS256 security.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// accessClaims extends the registered JWT claims with the account email.
type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Verify parses and validates an access token. Returns the session it
// represents: the account identity (subject) and email claim.
func (v *Verifier) Verify(tokenString string) (domain.Session, error) {
	if tokenString == "" {
		return domain.Session{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Session{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != v.issuer {
		return domain.Session{}, fmt.Errorf("invalid issuer: expected %s, got %s", v.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Session{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return domain.Session{UserID: userID, Email: claims.Email}, nil
}
