package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"idealink-backend/internal/domains/idea"
	"idealink-backend/pkg/cache"
	"idealink-backend/pkg/database"
)

const ideaCacheTTL = 5 * time.Minute

// DB is the slice of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type postgresRepository struct {
	db    DB
	cache cache.Cache
}

func NewPostgresRepository(db DB, cache cache.Cache) idea.Repository {
	return &postgresRepository{
		db:    db,
		cache: cache,
	}
}

const ideaColumns = `
	id, title, short_description, long_description, category, time_required,
	is_paid, members_needed, professions,
	author_id, author_name, author_email,
	created_at, updated_at
`

func (r *postgresRepository) Create(ctx context.Context, i *idea.Idea) error {
	query := `
		INSERT INTO ideas (
			id, title, short_description, long_description, category, time_required,
			is_paid, members_needed, professions,
			author_id, author_name, author_email,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		i.ID,
		i.Title,
		i.ShortDescription,
		i.LongDescription,
		i.Category,
		i.TimeRequired,
		i.IsPaid,
		i.MembersNeeded,
		pq.Array(i.Professions),
		i.Author.ID,
		i.Author.Name,
		i.Author.Email,
		i.CreatedAt,
		i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert idea: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*idea.Idea, error) {
	cacheKey := fmt.Sprintf("idea:%s", id.String())

	var i idea.Idea
	if found, err := r.cache.Get(ctx, cacheKey, &i); err == nil && found {
		return &i, nil
	}

	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	found, err := scanIdea(row, &i)
	if err != nil {
		return nil, fmt.Errorf("find idea by id: %w", err)
	}
	if !found {
		return nil, idea.ErrIdeaNotFound
	}

	_ = r.cache.Set(ctx, cacheKey, &i, ideaCacheTTL)

	return &i, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]idea.Idea, error) {
	query := `SELECT ` + ideaColumns + ` FROM ideas ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	ideas := make([]idea.Idea, 0)
	for rows.Next() {
		var i idea.Idea
		if _, err := scanIdea(rows, &i); err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	return ideas, nil
}

func (r *postgresRepository) Update(ctx context.Context, i *idea.Idea) error {
	// author_* deliberately absent: the snapshot is immutable.
	query := `
		UPDATE ideas SET
			title = $2,
			short_description = $3,
			long_description = $4,
			category = $5,
			time_required = $6,
			is_paid = $7,
			members_needed = $8,
			professions = $9,
			updated_at = $10
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		i.ID,
		i.Title,
		i.ShortDescription,
		i.LongDescription,
		i.Category,
		i.TimeRequired,
		i.IsPaid,
		i.MembersNeeded,
		pq.Array(i.Professions),
		i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update idea: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return idea.ErrIdeaNotFound
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf("idea:%s", i.ID.String()))

	return nil
}

// Delete removes the idea's applications and then the idea itself inside a
// single transaction, so a crash can never leave applications pointing at a
// missing idea.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE idea_id = $1`, id); err != nil {
			return fmt.Errorf("delete applications for idea: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM ideas WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete idea: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return idea.ErrIdeaNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf("idea:%s", id.String()))

	return nil
}

// scanIdea reads one idea row. Returns found=false on pgx.ErrNoRows.
// professions must be scanned as a plain []string: pgx decodes text[]
// natively in either wire format, while a pq.Array destination only
// understands the text representation.
func scanIdea(row pgx.Row, i *idea.Idea) (bool, error) {
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.ShortDescription,
		&i.LongDescription,
		&i.Category,
		&i.TimeRequired,
		&i.IsPaid,
		&i.MembersNeeded,
		&i.Professions,
		&i.Author.ID,
		&i.Author.Name,
		&i.Author.Email,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
