package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/axiomforum/axiom-backend/internal/domain"
)

// sessionStore is the session lifecycle surface owned by the auth
// boundary.
type sessionStore interface {
	Current() *domain.Session
	Set(s domain.Session)
	SignOut()
}

type sessionVerifier interface {
	Verify(token string) (domain.Session, error)
}

// SessionHandler owns the session lifecycle endpoints. Token issuance
// stays with the external identity provider; this handler only
// verifies what the provider minted and tracks the resulting session.
type SessionHandler struct {
	sessions sessionStore
	verifier sessionVerifier
	log      *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions sessionStore, verifier sessionVerifier, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		verifier: verifier,
		log:      logger.With("handler", "session"),
	}
}

type signInRequest struct {
	Token string `json:"token"`
}

type sessionResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Get handles GET /api/session.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	current := h.sessions.Current()
	if current == nil {
		writeError(w, http.StatusNotFound, "signed out")
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		UserID: current.UserID.String(),
		Email:  current.Email,
	})
}

// SignIn handles POST /api/session.
func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	session, err := h.verifier.Verify(req.Token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	h.sessions.Set(session)
	h.log.InfoContext(r.Context(), "signed in",
		slog.String("user_id", session.UserID.String()))

	writeJSON(w, http.StatusOK, sessionResponse{
		UserID: session.UserID.String(),
		Email:  session.Email,
	})
}

// SignOut handles DELETE /api/session. Signing out while already
// signed out is a no-op.
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.sessions.SignOut()
	w.WriteHeader(http.StatusNoContent)
}
