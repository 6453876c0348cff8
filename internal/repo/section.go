package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/subway-planner/internal/domain"
)

// SectionRepo defines the persistence operations for sections.
// Sections are only ever inserted or deleted, never updated.
type SectionRepo interface {
	// ListByLine returns the current sections of one line with both
	// endpoint stations resolved. Order is unspecified; the ledger derives
	// the chain order itself.
	ListByLine(ctx context.Context, lineID uuid.UUID) ([]domain.Section, error)

	// ListAll returns every section of every line, for route queries.
	ListAll(ctx context.Context) ([]domain.Section, error)

	// ListLineIDsByStation returns the IDs of all lines with a section that
	// starts or ends at stationID.
	ListLineIDsByStation(ctx context.Context, stationID uuid.UUID) ([]uuid.UUID, error)

	// Create inserts a section and returns it with its DB-generated ID.
	Create(ctx context.Context, section domain.Section) (domain.Section, error)

	// Delete removes a section by ID. Returns domain.ErrNotFound if it does
	// not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgSectionRepo is the Postgres implementation of SectionRepo.
type pgSectionRepo struct {
	db db
}

// NewSectionRepo constructs a SectionRepo backed by the provided db connection.
func NewSectionRepo(db db) SectionRepo {
	return &pgSectionRepo{db: db}
}

// selectSections joins both endpoint stations so a section can be scanned in
// one row.
const selectSections = `
		SELECT s.id, s.line_id, s.distance,
		       u.id, u.name, u.created_at,
		       d.id, d.name, d.created_at
		FROM sections s
		JOIN stations u ON u.id = s.up_station_id
		JOIN stations d ON d.id = s.down_station_id`

func (r *pgSectionRepo) ListByLine(ctx context.Context, lineID uuid.UUID) ([]domain.Section, error) {
	q := selectSections + `
		WHERE s.line_id = @line_id
		ORDER BY s.created_at`

	sections, err := r.query(ctx, q, pgx.NamedArgs{"line_id": lineID})
	if err != nil {
		return nil, fmt.Errorf("repo.SectionRepo.ListByLine: %w", err)
	}
	return sections, nil
}

func (r *pgSectionRepo) ListAll(ctx context.Context) ([]domain.Section, error) {
	q := selectSections + `
		ORDER BY s.line_id, s.created_at`

	sections, err := r.query(ctx, q, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("repo.SectionRepo.ListAll: %w", err)
	}
	return sections, nil
}

func (r *pgSectionRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Section, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []domain.Section{}
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return sections, nil
}

func (r *pgSectionRepo) ListLineIDsByStation(ctx context.Context, stationID uuid.UUID) ([]uuid.UUID, error) {
	const q = `
		SELECT DISTINCT line_id
		FROM sections
		WHERE up_station_id = @station_id OR down_station_id = @station_id
		ORDER BY line_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"station_id": stationID})
	if err != nil {
		return nil, fmt.Errorf("repo.SectionRepo.ListLineIDsByStation: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repo.SectionRepo.ListLineIDsByStation: scan: %w", err)
		}
		ids = append(ids, uuid.UUID(id.Bytes))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SectionRepo.ListLineIDsByStation: rows: %w", err)
	}
	return ids, nil
}

func (r *pgSectionRepo) Create(ctx context.Context, section domain.Section) (domain.Section, error) {
	const q = `
		INSERT INTO sections (line_id, up_station_id, down_station_id, distance)
		VALUES (@line_id, @up_station_id, @down_station_id, @distance)
		RETURNING id`

	args := pgx.NamedArgs{
		"line_id":         section.LineID,
		"up_station_id":   section.Up.ID,
		"down_station_id": section.Down.ID,
		"distance":        section.Distance.Int(),
	}

	var id pgtype.UUID
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		return domain.Section{}, fmt.Errorf("repo.SectionRepo.Create: %w", mapPgError(err))
	}
	section.ID = uuid.UUID(id.Bytes)
	return section, nil
}

func (r *pgSectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM sections WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.SectionRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SectionRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanSection maps a joined section row into a domain.Section.
func scanSection(s scanner) (domain.Section, error) {
	var (
		sec          domain.Section
		id, lineID   pgtype.UUID
		upID, downID pgtype.UUID
		distance     int
	)
	err := s.Scan(
		&id, &lineID, &distance,
		&upID, &sec.Up.Name, &sec.Up.CreatedAt,
		&downID, &sec.Down.Name, &sec.Down.CreatedAt,
	)
	if err != nil {
		return domain.Section{}, err
	}
	sec.ID = uuid.UUID(id.Bytes)
	sec.LineID = uuid.UUID(lineID.Bytes)
	sec.Up.ID = uuid.UUID(upID.Bytes)
	sec.Down.ID = uuid.UUID(downID.Bytes)
	sec.Distance = domain.Distance(distance)
	return sec, nil
}
