// Package topic implements the Topic repository using PostgreSQL.
// Read queries join the author's profile; a missing profile row yields
// the sentinel author name instead of failing the read.
package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/axiomforum/axiom-backend/internal/adapter/postgres"
	"github.com/axiomforum/axiom-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// topicRow mirrors a topics row joined with the author's username.
type topicRow struct {
	ID         uuid.UUID `db:"id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	AuthorID   uuid.UUID `db:"author_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
	AuthorName string    `db:"author_name"`
}

func (r topicRow) toDomain() domain.Topic {
	return domain.Topic{
		ID:         r.ID,
		Title:      r.Title,
		Content:    r.Content,
		AuthorID:   r.AuthorID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		AuthorName: r.AuthorName,
	}
}

// selectJoined builds the base author-joined SELECT.
func selectJoined() squirrel.SelectBuilder {
	return qb.
		Select("t.id", "t.title", "t.content", "t.author_id", "t.created_at", "t.updated_at").
		Column(squirrel.Alias(
			squirrel.Expr("COALESCE(p.username, ?)", domain.UnknownAuthor),
			"author_name",
		)).
		From("topics t").
		LeftJoin("profiles p ON p.id = t.author_id")
}

// List returns all topics, newest first. Unbounded: pagination is a
// known scale limit of the read contract.
func (r *Repo) List(ctx context.Context) ([]*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := selectJoined().
		OrderBy("t.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []topicRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return toDomainTopics(rows), nil
}

// ListByAuthor returns an account's authored topics, newest first.
func (r *Repo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := selectJoined().
		Where(squirrel.Eq{"t.author_id": authorID}).
		OrderBy("t.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []topicRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list topics by author: %w", err)
	}

	return toDomainTopics(rows), nil
}

// GetByID returns one topic by primary key, author-joined.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := selectJoined().
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row topicRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	t := row.toDomain()
	return &t, nil
}

// Create inserts a new topic. AuthorName is not populated on the
// returned value; creations are followed by a list refetch.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.
		Insert("topics").
		Columns("title", "content", "author_id").
		Values(t.Title, t.Content, t.AuthorID).
		Suffix("RETURNING id, title, content, author_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row topicRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}

	created := row.toDomain()
	return &created, nil
}

// Update rewrites title and content, scoped to the owning account.
// Returns domain.ErrNotFound when the topic does not exist or belongs
// to another account; authorship and created_at are immutable.
func (r *Repo) Update(ctx context.Context, authorID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.
		Update("topics").
		Set("title", params.Title).
		Set("content", params.Content).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": topicID, "author_id": authorID}).
		Suffix("RETURNING id, title, content, author_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row topicRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Touch bumps the topic's updated_at. Posting a reply touches the
// parent thread so it surfaces in recency orderings. Returns
// domain.ErrNotFound when the topic does not exist.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.
		Update("topics").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "topic", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "topic", id)
	}

	return nil
}

func toDomainTopics(rows []topicRow) []*domain.Topic {
	topics := make([]*domain.Topic, len(rows))
	for i, row := range rows {
		t := row.toDomain()
		topics[i] = &t
	}
	return topics
}
