package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
	"github.com/pkordes/subway-planner/internal/repo"
)

// LineService manages the line directory and reads a line's current chain.
type LineService struct {
	lines    repo.LineRepo
	sections repo.SectionRepo
}

// NewLineService constructs a LineService backed by the provided repos.
func NewLineService(lines repo.LineRepo, sections repo.SectionRepo) *LineService {
	return &LineService{lines: lines, sections: sections}
}

// Create validates and persists a new, empty line.
// Returns domain.ErrInvalidInput for a blank name.
func (s *LineService) Create(ctx context.Context, name, color string) (domain.Line, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Line{}, fmt.Errorf("service.LineService.Create: %w: name is required", domain.ErrInvalidInput)
	}
	line, err := s.lines.Create(ctx, domain.Line{Name: name, Color: strings.TrimSpace(color)})
	if err != nil {
		return domain.Line{}, fmt.Errorf("service.LineService.Create: %w", err)
	}
	return line, nil
}

// Get returns the line with its stations and sections in up-to-down order.
func (s *LineService) Get(ctx context.Context, id uuid.UUID) (domain.LineDetail, error) {
	line, err := s.lines.GetByID(ctx, id)
	if err != nil {
		return domain.LineDetail{}, fmt.Errorf("service.LineService.Get: %w", err)
	}
	current, err := s.sections.ListByLine(ctx, id)
	if err != nil {
		return domain.LineDetail{}, fmt.Errorf("service.LineService.Get: %w", err)
	}

	chain := domain.NewSections(id, current)
	ordered, err := chain.Ordered()
	if err != nil {
		return domain.LineDetail{}, fmt.Errorf("service.LineService.Get: %w", err)
	}
	stations, err := chain.Stations()
	if err != nil {
		return domain.LineDetail{}, fmt.Errorf("service.LineService.Get: %w", err)
	}
	return domain.LineDetail{
		Line:     line,
		Stations: stations,
		Sections: ordered,
		Length:   chain.TotalDistance(),
	}, nil
}

// List returns all lines ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LineService) List(ctx context.Context) ([]domain.Line, error) {
	lines, err := s.lines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.LineService.List: %w", err)
	}
	if lines == nil {
		return []domain.Line{}, nil
	}
	return lines, nil
}

// Delete removes a line together with all of its sections.
func (s *LineService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.lines.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.LineService.Delete: %w", err)
	}
	return nil
}
