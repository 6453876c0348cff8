package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/subway-planner/internal/domain"
)

// LineRepo defines the persistence operations for the line directory.
type LineRepo interface {
	// Create inserts a new line and returns the persisted record.
	// Returns domain.ErrDuplicate if the name is already taken.
	Create(ctx context.Context, line domain.Line) (domain.Line, error)

	// GetByID retrieves a line by its UUID primary key.
	// Returns domain.ErrNotFound if no line with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Line, error)

	// LockByID is GetByID with a row lock held until the surrounding
	// transaction ends. Every mutation of a line's sections takes this lock
	// first, so two requests can never edit the same chain concurrently.
	LockByID(ctx context.Context, id uuid.UUID) (domain.Line, error)

	// List returns all lines ordered by name.
	List(ctx context.Context) ([]domain.Line, error)

	// Touch bumps updated_at after the line's sections changed.
	Touch(ctx context.Context, id uuid.UUID) error

	// Delete removes a line and, through ON DELETE CASCADE, all its sections.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgLineRepo is the Postgres implementation of LineRepo.
type pgLineRepo struct {
	db db
}

// NewLineRepo constructs a LineRepo backed by the provided db connection.
func NewLineRepo(db db) LineRepo {
	return &pgLineRepo{db: db}
}

func (r *pgLineRepo) Create(ctx context.Context, line domain.Line) (domain.Line, error) {
	const q = `
		INSERT INTO lines (name, color)
		VALUES (@name, @color)
		RETURNING id, name, color, created_at, updated_at`

	result, err := scanLine(r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": line.Name, "color": line.Color}))
	if err != nil {
		return domain.Line{}, fmt.Errorf("repo.LineRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgLineRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Line, error) {
	const q = `
		SELECT id, name, color, created_at, updated_at
		FROM lines
		WHERE id = @id`

	result, err := scanLine(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Line{}, fmt.Errorf("repo.LineRepo.GetByID: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgLineRepo) LockByID(ctx context.Context, id uuid.UUID) (domain.Line, error) {
	const q = `
		SELECT id, name, color, created_at, updated_at
		FROM lines
		WHERE id = @id
		FOR UPDATE`

	result, err := scanLine(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Line{}, fmt.Errorf("repo.LineRepo.LockByID: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgLineRepo) List(ctx context.Context) ([]domain.Line, error) {
	const q = `
		SELECT id, name, color, created_at, updated_at
		FROM lines
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.LineRepo.List: %w", err)
	}
	defer rows.Close()

	lines := []domain.Line{}
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.LineRepo.List: scan: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LineRepo.List: rows: %w", err)
	}
	return lines, nil
}

func (r *pgLineRepo) Touch(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE lines SET updated_at = now() WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.LineRepo.Touch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.LineRepo.Touch: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgLineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM lines WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.LineRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.LineRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanLine maps a single database row into a domain.Line.
func scanLine(s scanner) (domain.Line, error) {
	var (
		l  domain.Line
		id pgtype.UUID
	)
	if err := s.Scan(&id, &l.Name, &l.Color, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return domain.Line{}, err
	}
	l.ID = uuid.UUID(id.Bytes)
	return l, nil
}
