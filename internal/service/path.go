package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/repo"
	"github.com/pkordes/subway-planner/internal/route"
)

// PathService answers route queries over the whole network.
// Each call reads a fresh snapshot of every section; nothing is cached.
type PathService struct {
	stations repo.StationRepo
	sections repo.SectionRepo
	planner  *route.Planner
}

// NewPathService constructs a PathService that prices with planner.
func NewPathService(stations repo.StationRepo, sections repo.SectionRepo, planner *route.Planner) *PathService {
	return &PathService{stations: stations, sections: sections, planner: planner}
}

// Find returns the shortest priced route from sourceID to targetID.
// Returns domain.ErrNotFound for an unknown station ID,
// domain.ErrNoSuchStation for a station on no line and domain.ErrUnreachable
// when the two stations are not connected.
func (s *PathService) Find(ctx context.Context, sourceID, targetID uuid.UUID) (route.Route, error) {
	source, err := s.stations.GetByID(ctx, sourceID)
	if err != nil {
		return route.Route{}, fmt.Errorf("service.PathService.Find: source: %w", err)
	}
	target, err := s.stations.GetByID(ctx, targetID)
	if err != nil {
		return route.Route{}, fmt.Errorf("service.PathService.Find: target: %w", err)
	}

	snapshot, err := s.sections.ListAll(ctx)
	if err != nil {
		return route.Route{}, fmt.Errorf("service.PathService.Find: %w", err)
	}
	rt, err := s.planner.Plan(snapshot, source, target)
	if err != nil {
		return route.Route{}, fmt.Errorf("service.PathService.Find: %w", err)
	}
	return rt, nil
}
