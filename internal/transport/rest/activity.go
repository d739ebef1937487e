package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/axiomforum/axiom-backend/internal/service/activity"
)

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	Fetch(ctx context.Context) (*activity.Activity, error)
	BeginEdit(ctx context.Context, input activity.BeginEditInput) error
	CurrentEdit(ctx context.Context) (*activity.Edit, error)
	Save(ctx context.Context, input activity.SaveInput) (*activity.Activity, error)
	Cancel(ctx context.Context) error
}

// ActivityHandler serves the "my activity" REST endpoints.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type activityResponse struct {
	Topics  []topicResponse `json:"topics"`
	Replies []replyResponse `json:"replies"`
}

type beginEditRequest struct {
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type editResponse struct {
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

type saveEditRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Fetch handles GET /api/activity.
func (h *ActivityHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	act, err := h.svc.Fetch(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(act))
}

// BeginEdit handles POST /api/activity/edit.
func (h *ActivityHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	var req beginEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	err = h.svc.BeginEdit(r.Context(), activity.BeginEditInput{
		Kind:    activity.ItemKind(req.Kind),
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CurrentEdit handles GET /api/activity/edit.
func (h *ActivityHandler) CurrentEdit(w http.ResponseWriter, r *http.Request) {
	edit, err := h.svc.CurrentEdit(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if edit == nil {
		writeError(w, http.StatusNotFound, "no item is being edited")
		return
	}

	writeJSON(w, http.StatusOK, editResponse{
		Kind:    string(edit.Kind),
		ID:      edit.ID.String(),
		Title:   edit.Title,
		Content: edit.Content,
	})
}

// Save handles PUT /api/activity/edit. A committed save responds with
// the freshly re-read activity lists.
func (h *ActivityHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	act, err := h.svc.Save(r.Context(), activity.SaveInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(act))
}

// CancelEdit handles DELETE /api/activity/edit.
func (h *ActivityHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Cancel(r.Context()); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toActivityResponse(act *activity.Activity) activityResponse {
	resp := activityResponse{
		Topics:  toTopicResponses(act.Topics),
		Replies: make([]replyResponse, len(act.Replies)),
	}
	for i, reply := range act.Replies {
		resp.Replies[i] = toReplyResponse(reply)
	}
	return resp
}
