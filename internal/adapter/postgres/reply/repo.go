// Package reply implements the Reply repository using PostgreSQL.
package reply

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/axiomforum/axiom-backend/internal/adapter/postgres"
	"github.com/axiomforum/axiom-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides reply persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reply repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// replyRow mirrors a replies row joined with the author's username.
type replyRow struct {
	ID         uuid.UUID `db:"id"`
	TopicID    uuid.UUID `db:"topic_id"`
	Content    string    `db:"content"`
	AuthorID   uuid.UUID `db:"author_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
	AuthorName string    `db:"author_name"`
}

func (r replyRow) toDomain() domain.Reply {
	return domain.Reply{
		ID:         r.ID,
		TopicID:    r.TopicID,
		Content:    r.Content,
		AuthorID:   r.AuthorID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		AuthorName: r.AuthorName,
	}
}

func selectJoined() squirrel.SelectBuilder {
	return qb.
		Select("r.id", "r.topic_id", "r.content", "r.author_id", "r.created_at", "r.updated_at").
		Column(squirrel.Alias(
			squirrel.Expr("COALESCE(p.username, ?)", domain.UnknownAuthor),
			"author_name",
		)).
		From("replies r").
		LeftJoin("profiles p ON p.id = r.author_id")
}

// ListByTopic returns a topic's replies in chronological order: the
// thread reads oldest first, the opposite of topic discovery order.
func (r *Repo) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.Reply, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := selectJoined().
		Where(squirrel.Eq{"r.topic_id": topicID}).
		OrderBy("r.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []replyRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list replies by topic: %w", err)
	}

	return toDomainReplies(rows), nil
}

// ListByAuthor returns an account's authored replies, newest first.
func (r *Repo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Reply, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := selectJoined().
		Where(squirrel.Eq{"r.author_id": authorID}).
		OrderBy("r.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []replyRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list replies by author: %w", err)
	}

	return toDomainReplies(rows), nil
}

// Create inserts a new reply. A foreign-key violation on topic_id maps
// to domain.ErrNotFound: replying to a deleted topic is a missing
// target, not a write failure.
func (r *Repo) Create(ctx context.Context, reply *domain.Reply) (*domain.Reply, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.
		Insert("replies").
		Columns("topic_id", "content", "author_id").
		Values(reply.TopicID, reply.Content, reply.AuthorID).
		Suffix("RETURNING id, topic_id, content, author_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row replyRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reply", uuid.Nil)
	}

	created := row.toDomain()
	return &created, nil
}

// Update rewrites content, scoped to the owning account. Returns
// domain.ErrNotFound when the reply does not exist or belongs to
// another account.
func (r *Repo) Update(ctx context.Context, authorID, replyID uuid.UUID, content string) (*domain.Reply, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.
		Update("replies").
		Set("content", content).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": replyID, "author_id": authorID}).
		Suffix("RETURNING id, topic_id, content, author_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row replyRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reply", replyID)
	}

	updated := row.toDomain()
	return &updated, nil
}

func toDomainReplies(rows []replyRow) []*domain.Reply {
	replies := make([]*domain.Reply, len(rows))
	for i, row := range rows {
		rep := row.toDomain()
		replies[i] = &rep
	}
	return replies
}
