package rest

import (
	"net/http"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Session  *SessionHandler
	Profile  *ProfileHandler
	Topics   *TopicHandler
	Activity *ActivityHandler
}

// NewRouter mounts all REST endpoints on a ServeMux. Middleware is
// applied by the caller around the returned handler.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("GET /api/session", h.Session.Get)
	mux.HandleFunc("POST /api/session", h.Session.SignIn)
	mux.HandleFunc("DELETE /api/session", h.Session.SignOut)

	mux.HandleFunc("GET /api/profile", h.Profile.Get)
	mux.HandleFunc("PUT /api/profile", h.Profile.Update)
	mux.HandleFunc("POST /api/profile/username-check", h.Profile.CheckUsername)

	mux.HandleFunc("GET /api/topics", h.Topics.List)
	mux.HandleFunc("POST /api/topics", h.Topics.Create)
	mux.HandleFunc("GET /api/topics/{id}", h.Topics.Get)
	mux.HandleFunc("POST /api/topics/{id}/replies", h.Topics.CreateReply)

	mux.HandleFunc("GET /api/activity", h.Activity.Fetch)
	mux.HandleFunc("GET /api/activity/edit", h.Activity.CurrentEdit)
	mux.HandleFunc("POST /api/activity/edit", h.Activity.BeginEdit)
	mux.HandleFunc("PUT /api/activity/edit", h.Activity.Save)
	mux.HandleFunc("DELETE /api/activity/edit", h.Activity.CancelEdit)

	return mux
}
