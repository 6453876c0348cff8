package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
	"github.com/pkordes/subway-planner/internal/repo"
)

// StationService manages the station directory.
// Deleting a station first takes it off every line it belongs to.
type StationService struct {
	stations repo.StationRepo
	tx       repo.Transactor
	log      *slog.Logger
}

// NewStationService constructs a StationService. A nil log discards output.
func NewStationService(stations repo.StationRepo, tx repo.Transactor, log *slog.Logger) *StationService {
	if log == nil {
		log = discardLogger()
	}
	return &StationService{stations: stations, tx: tx, log: log}
}

// Create validates and persists a new station.
// Returns domain.ErrInvalidInput for a blank name and domain.ErrDuplicate if
// the name is taken.
func (s *StationService) Create(ctx context.Context, name string) (domain.Station, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Station{}, fmt.Errorf("service.StationService.Create: %w: name is required", domain.ErrInvalidInput)
	}
	st, err := s.stations.Create(ctx, name)
	if err != nil {
		return domain.Station{}, fmt.Errorf("service.StationService.Create: %w", err)
	}
	return st, nil
}

// GetByID returns a single station by ID.
func (s *StationService) GetByID(ctx context.Context, id uuid.UUID) (domain.Station, error) {
	st, err := s.stations.GetByID(ctx, id)
	if err != nil {
		return domain.Station{}, fmt.Errorf("service.StationService.GetByID: %w", err)
	}
	return st, nil
}

// List returns all stations ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *StationService) List(ctx context.Context) ([]domain.Station, error) {
	stations, err := s.stations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StationService.List: %w", err)
	}
	if stations == nil {
		return []domain.Station{}, nil
	}
	return stations, nil
}

// Delete removes the station from every line that contains it and then from
// the directory, all in one transaction. Lines are locked in ID order.
// With teardown false, a station that is the last section of any line makes
// the whole call fail with domain.ErrLastSection and nothing changes.
func (s *StationService) Delete(ctx context.Context, id uuid.UUID, teardown bool) error {
	var changes []Change
	err := s.tx.InTx(ctx, func(r repo.Repos) error {
		st, err := r.Stations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		lineIDs, err := r.Sections.ListLineIDsByStation(ctx, id)
		if err != nil {
			return err
		}
		for _, lineID := range lineIDs {
			c, err := mutateLine(ctx, r, lineID, func(cur domain.Sections) (domain.Plan, error) {
				return cur.Delete(st, deleteOptions(teardown)...)
			})
			if err != nil {
				return fmt.Errorf("line %s: %w", lineID, err)
			}
			changes = append(changes, c)
		}
		return r.Stations.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("service.StationService.Delete: %w", err)
	}
	for _, c := range changes {
		logChange(ctx, s.log, "delete_station", c)
	}
	return nil
}
