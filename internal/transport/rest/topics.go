package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/axiomforum/axiom-backend/internal/domain"
	"github.com/axiomforum/axiom-backend/internal/service/forum"
	"github.com/axiomforum/axiom-backend/pkg/timeago"
)

// forumService defines the minimal interface needed by TopicHandler.
type forumService interface {
	ListTopics(ctx context.Context) ([]*domain.Topic, error)
	GetTopic(ctx context.Context, id uuid.UUID) (*forum.TopicThread, error)
	CreateTopic(ctx context.Context, input forum.CreateTopicInput) (*domain.Topic, error)
	CreateReply(ctx context.Context, input forum.CreateReplyInput) (*domain.Reply, error)
}

// TopicHandler serves topic and reply REST endpoints.
type TopicHandler struct {
	svc forumService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc forumService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topics")}
}

type createTopicRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type createReplyRequest struct {
	Content string `json:"content"`
}

type topicResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	CreatedAgo string    `json:"createdAgo"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type replyResponse struct {
	ID         string    `json:"id"`
	TopicID    string    `json:"topicId"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	CreatedAgo string    `json:"createdAgo"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type topicThreadResponse struct {
	Topic   topicResponse   `json:"topic"`
	Replies []replyResponse `json:"replies"`
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListTopics(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponses(topics))
}

// Get handles GET /api/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	thread, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := topicThreadResponse{
		Topic:   toTopicResponse(thread.Topic),
		Replies: make([]replyResponse, len(thread.Replies)),
	}
	for i, reply := range thread.Replies {
		resp.Replies[i] = toReplyResponse(reply)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateTopic(r.Context(), forum.CreateTopicInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(created))
}

// CreateReply handles POST /api/topics/{id}/replies.
func (h *TopicHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	topicID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	var req createReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateReply(r.Context(), forum.CreateReplyInput{
		TopicID: topicID,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReplyResponse(created))
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:         t.ID.String(),
		Title:      t.Title,
		Content:    t.Content,
		AuthorID:   t.AuthorID.String(),
		AuthorName: t.AuthorName,
		CreatedAt:  t.CreatedAt,
		CreatedAgo: timeago.Since(t.CreatedAt),
		UpdatedAt:  t.UpdatedAt,
	}
}

func toTopicResponses(topics []*domain.Topic) []topicResponse {
	out := make([]topicResponse, len(topics))
	for i, t := range topics {
		out[i] = toTopicResponse(t)
	}
	return out
}

func toReplyResponse(reply *domain.Reply) replyResponse {
	return replyResponse{
		ID:         reply.ID.String(),
		TopicID:    reply.TopicID.String(),
		Content:    reply.Content,
		AuthorID:   reply.AuthorID.String(),
		AuthorName: reply.AuthorName,
		CreatedAt:  reply.CreatedAt,
		CreatedAgo: timeago.Since(reply.CreatedAt),
		UpdatedAt:  reply.UpdatedAt,
	}
}
