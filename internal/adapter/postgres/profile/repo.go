// Package profile implements the Profile repository using PostgreSQL.
package profile

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

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// profileRow mirrors the profiles table for scany.
type profileRow struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r profileRow) toDomain() domain.Profile {
	return domain.Profile{
		ID:        r.ID,
		Username:  r.Username,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// GetByID returns the profile for an account identity.
// Returns domain.ErrNotFound when the account has not saved a profile yet.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.
		Select("id", "username", "created_at", "updated_at").
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	p := row.toDomain()
	return &p, nil
}

// ExistsByUsername reports whether any profile holds the exact username.
// This backs the advisory availability check; the unique constraint on
// profiles.username remains the authoritative arbiter.
func (r *Repo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.
		Select("1").
		Prefix("SELECT EXISTS (").
		From("profiles").
		Where(squirrel.Eq{"username": username}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "profile", uuid.Nil)
	}

	return exists, nil
}

// Upsert inserts or replaces the profile keyed on the account identity.
// A unique_violation on the username maps to domain.ErrAlreadyExists.
func (r *Repo) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.
		Insert("profiles").
		Columns("id", "username", "updated_at").
		Values(p.ID, p.Username, p.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET username = EXCLUDED.username, updated_at = EXCLUDED.updated_at
			RETURNING id, username, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}

	result := row.toDomain()
	return &result, nil
}
