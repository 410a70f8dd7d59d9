package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"idealink-backend/internal/domains/application"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) application.Repository {
	return &postgresRepository{pool: pool}
}

const applicationColumns = `
	id, idea_id, idea_title, user_id, name, email,
	cover_letter, cv_link, status, created_at, updated_at
`

func (r *postgresRepository) Create(ctx context.Context, a *application.Application) error {
	query := `
		INSERT INTO applications (
			id, idea_id, idea_title, user_id, name, email,
			cover_letter, cv_link, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.IdeaID,
		a.IdeaTitle,
		a.UserID,
		a.Name,
		a.Email,
		a.CoverLetter,
		a.CVLink,
		a.Status,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		// The (idea_id, user_id) unique index is the canonical duplicate
		// signal; it catches the race two concurrent applies can win past
		// the service pre-check.
		if isUniqueViolation(err) {
			return application.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var a application.Application
	err := scanApplication(r.pool.QueryRow(ctx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) ExistsByIdeaAndUser(ctx context.Context, ideaID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE idea_id = $1 AND user_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, ideaID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check application exists: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	return r.list(ctx, query, userID)
}

func (r *postgresRepository) ListByIdeaAuthor(ctx context.Context, authorID uuid.UUID) ([]application.Application, error) {
	// Applications do not store the idea's author, so resolve through the
	// ideas table.
	query := `
		SELECT
			a.id, a.idea_id, a.idea_title, a.user_id, a.name, a.email,
			a.cover_letter, a.cv_link, a.status, a.created_at, a.updated_at
		FROM applications a
		JOIN ideas i ON i.id = a.idea_id
		WHERE i.author_id = $1
		ORDER BY a.created_at DESC
	`

	return r.list(ctx, query, authorID)
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return application.ErrApplicationNotFound
	}

	return nil
}

func (r *postgresRepository) list(ctx context.Context, query string, arg interface{}) ([]application.Application, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		if err := scanApplication(rows, &a); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return apps, nil
}

func scanApplication(row pgx.Row, a *application.Application) error {
	return row.Scan(
		&a.ID,
		&a.IdeaID,
		&a.IdeaTitle,
		&a.UserID,
		&a.Name,
		&a.Email,
		&a.CoverLetter,
		&a.CVLink,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
