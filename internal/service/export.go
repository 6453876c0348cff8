package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
	"github.com/pkordes/subway-planner/internal/repo"
)

// ExportService assembles a flat export of every line and its sections.
type ExportService struct {
	lines    repo.LineRepo
	sections repo.SectionRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(lines repo.LineRepo, sections repo.SectionRepo) *ExportService {
	return &ExportService{lines: lines, sections: sections}
}

// Export returns one ExportRow per section, grouped by line in name order and
// ordered from each line's up-terminal.
// Lines with no sections contribute one row with empty section fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	lines, err := s.lines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	all, err := s.sections.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	byLine := make(map[uuid.UUID][]domain.Section)
	for _, sec := range all {
		byLine[sec.LineID] = append(byLine[sec.LineID], sec)
	}

	rows := []domain.ExportRow{}
	for _, line := range lines {
		base := domain.ExportRow{
			LineID:    line.ID.String(),
			LineName:  line.Name,
			LineColor: line.Color,
		}
		ordered, err := domain.NewSections(line.ID, byLine[line.ID]).Ordered()
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: line %q: %w", line.Name, err)
		}
		if len(ordered) == 0 {
			rows = append(rows, base)
			continue
		}
		for i, sec := range ordered {
			row := base
			row.Position = i + 1
			row.UpStation = sec.Up.Name
			row.DownStation = sec.Down.Name
			row.Distance = sec.Distance.Int()
			rows = append(rows, row)
		}
	}
	return rows, nil
}
