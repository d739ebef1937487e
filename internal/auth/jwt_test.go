package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	testSecret = "test-secret-at-least-32-chars-long-for-security"
	testIssuer = "axiom-test"
)

// mintToken signs a token the way the identity provider does.
func mintToken(t *testing.T, secret, issuer string, userID uuid.UUID, email string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifier_Verify_Success(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret, testIssuer)
	userID := uuid.New()

	token := mintToken(t, testSecret, testIssuer, userID, "user@example.com", 15*time.Minute)

	session, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if session.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, session.UserID)
	}
	if session.Email != "user@example.com" {
		t.Errorf("expected email claim, got %q", session.Email)
	}
}

func TestVerifier_Verify_Expired(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret, testIssuer)
	token := mintToken(t, testSecret, testIssuer, uuid.New(), "", -time.Hour)

	_, err := v.Verify(token)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !strings.Contains(err.Error(), "expired") && !strings.Contains(err.Error(), "parse token") {
		t.Errorf("expected expiry-related error, got: %v", err)
	}
}

func TestVerifier_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret, testIssuer)
	token := mintToken(t, "different-secret-32-chars-long-for-security!!", testIssuer, uuid.New(), "", time.Minute)

	if _, err := v.Verify(token); err == nil {
		t.Fatal("expected error for wrong signature, got nil")
	}
}

func TestVerifier_Verify_WrongIssuer(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret, testIssuer)
	token := mintToken(t, testSecret, "someone-else", uuid.New(), "", time.Minute)

	_, err := v.Verify(token)
	if err == nil {
		t.Fatal("expected error for wrong issuer, got nil")
	}
	if !strings.Contains(err.Error(), "issuer") {
		t.Errorf("expected issuer error, got: %v", err)
	}
}

func TestVerifier_Verify_EmptyAndGarbage(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret, testIssuer)

	if _, err := v.Verify(""); err == nil {
		t.Fatal("expected error for empty token")
	}
	if _, err := v.Verify("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestVerifier_Verify_NonUUIDSubject(t *testing.T) {
	t.Parallel()

	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}

	v := NewVerifier(testSecret, testIssuer)
	if _, err := v.Verify(signed); err == nil {
		t.Fatal("expected error for non-UUID subject")
	}
}
