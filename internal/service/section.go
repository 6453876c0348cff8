package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
	"github.com/pkordes/subway-planner/internal/repo"
)

// SectionService edits the chain of one line at a time.
// Every call is one transaction: lock the line, run the ledger, persist the
// plan. A failed ledger call writes nothing.
type SectionService struct {
	tx  repo.Transactor
	log *slog.Logger
}

// NewSectionService constructs a SectionService. A nil log discards output.
func NewSectionService(tx repo.Transactor, log *slog.Logger) *SectionService {
	if log == nil {
		log = discardLogger()
	}
	return &SectionService{tx: tx, log: log}
}

// Insert attaches the pair upID→downID to the line.
// Returns domain.ErrNotFound if the line or either station does not exist,
// and the ledger's errors (ErrInvalidInput, ErrTopologyConflict,
// ErrDistanceExceeded) unchanged.
func (s *SectionService) Insert(ctx context.Context, lineID, upID, downID uuid.UUID, distance int) (Change, error) {
	var change Change
	err := s.tx.InTx(ctx, func(r repo.Repos) error {
		up, err := r.Stations.GetByID(ctx, upID)
		if err != nil {
			return fmt.Errorf("up station: %w", err)
		}
		down, err := r.Stations.GetByID(ctx, downID)
		if err != nil {
			return fmt.Errorf("down station: %w", err)
		}
		change, err = mutateLine(ctx, r, lineID, func(cur domain.Sections) (domain.Plan, error) {
			return cur.Insert(up, down, domain.Distance(distance))
		})
		return err
	})
	if err != nil {
		return Change{}, fmt.Errorf("service.SectionService.Insert: %w", err)
	}
	logChange(ctx, s.log, "insert", change)
	return change, nil
}

// RemoveStation takes stationID off the line. A station that is not on the
// line is a no-op and returns an empty plan.
// Returns domain.ErrLastSection if the station sits on the line's only
// section and teardown is false.
func (s *SectionService) RemoveStation(ctx context.Context, lineID, stationID uuid.UUID, teardown bool) (Change, error) {
	var change Change
	err := s.tx.InTx(ctx, func(r repo.Repos) error {
		st, err := r.Stations.GetByID(ctx, stationID)
		if err != nil {
			return err
		}
		change, err = mutateLine(ctx, r, lineID, func(cur domain.Sections) (domain.Plan, error) {
			return cur.Delete(st, deleteOptions(teardown)...)
		})
		return err
	})
	if err != nil {
		return Change{}, fmt.Errorf("service.SectionService.RemoveStation: %w", err)
	}
	logChange(ctx, s.log, "remove_station", change)
	return change, nil
}

func deleteOptions(teardown bool) []domain.DeleteOption {
	if teardown {
		return []domain.DeleteOption{domain.WithTeardown()}
	}
	return nil
}
