package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/subway-planner/internal/domain"
)

// StationRepo defines the persistence operations for the station directory.
type StationRepo interface {
	// Create inserts a new station and returns the persisted record.
	// Returns domain.ErrDuplicate if the name is already taken.
	Create(ctx context.Context, name string) (domain.Station, error)

	// GetByID retrieves a station by its UUID primary key.
	// Returns domain.ErrNotFound if no station with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Station, error)

	// List returns all stations ordered by name.
	List(ctx context.Context) ([]domain.Station, error)

	// Delete removes a station by ID. Returns domain.ErrNotFound if it does
	// not exist and domain.ErrInvalidInput if a section still references it.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgStationRepo is the Postgres implementation of StationRepo.
type pgStationRepo struct {
	db db
}

// NewStationRepo constructs a StationRepo backed by the provided db connection.
func NewStationRepo(db db) StationRepo {
	return &pgStationRepo{db: db}
}

func (r *pgStationRepo) Create(ctx context.Context, name string) (domain.Station, error) {
	const q = `
		INSERT INTO stations (name)
		VALUES (@name)
		RETURNING id, name, created_at`

	st, err := scanStation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name}))
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.Create: %w", mapPgError(err))
	}
	return st, nil
}

func (r *pgStationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Station, error) {
	const q = `
		SELECT id, name, created_at
		FROM stations
		WHERE id = @id`

	st, err := scanStation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.GetByID: %w", mapPgError(err))
	}
	return st, nil
}

func (r *pgStationRepo) List(ctx context.Context) ([]domain.Station, error) {
	const q = `
		SELECT id, name, created_at
		FROM stations
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.StationRepo.List: %w", err)
	}
	defer rows.Close()

	stations := []domain.Station{}
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StationRepo.List: scan: %w", err)
		}
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StationRepo.List: rows: %w", err)
	}
	return stations, nil
}

func (r *pgStationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM stations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.StationRepo.Delete: %w", mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.StationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanStation maps a single database row into a domain.Station.
func scanStation(s scanner) (domain.Station, error) {
	var (
		st domain.Station
		id pgtype.UUID
	)
	if err := s.Scan(&id, &st.Name, &st.CreatedAt); err != nil {
		return domain.Station{}, err
	}
	st.ID = uuid.UUID(id.Bytes)
	return st, nil
}
