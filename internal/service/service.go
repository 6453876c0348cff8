// Package service contains the business logic for the subway planner API.
// Services load the current state, ask the ledger or the planner what should
// change, and persist the answer. No SQL lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
	"github.com/pkordes/subway-planner/internal/repo"
)

// Change is a ledger plan after it has been written to the database.
// Plan.Added carries the stored sections with their generated IDs.
// Sections is the line's chain after the change, from the up-terminal down.
type Change struct {
	Line     domain.Line
	Plan     domain.Plan
	Sections []domain.Section
}

// discardLogger is used when a constructor is given a nil logger.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mutateLine runs one ledger mutation against lineID inside r's transaction.
// It takes the row lock on the line before reading its sections, so the
// snapshot handed to mutate cannot change until the transaction ends.
func mutateLine(
	ctx context.Context,
	r repo.Repos,
	lineID uuid.UUID,
	mutate func(domain.Sections) (domain.Plan, error),
) (Change, error) {
	line, err := r.Lines.LockByID(ctx, lineID)
	if err != nil {
		return Change{}, err
	}
	current, err := r.Sections.ListByLine(ctx, lineID)
	if err != nil {
		return Change{}, err
	}
	snapshot := domain.NewSections(lineID, current)

	plan, err := mutate(snapshot)
	if err != nil {
		return Change{}, err
	}
	if plan.Empty() {
		ordered, err := snapshot.Ordered()
		if err != nil {
			return Change{}, err
		}
		return Change{Line: line, Plan: plan, Sections: ordered}, nil
	}

	stored, err := persistPlan(ctx, r, plan)
	if err != nil {
		return Change{}, err
	}
	if err := r.Lines.Touch(ctx, lineID); err != nil {
		return Change{}, err
	}

	ordered, err := snapshot.Apply(stored).Ordered()
	if err != nil {
		return Change{}, err
	}
	return Change{Line: line, Plan: stored, Sections: ordered}, nil
}

// persistPlan deletes before it inserts: a split re-uses the up or down
// station of the section it replaces, which the per-line unique constraints
// would otherwise reject.
func persistPlan(ctx context.Context, r repo.Repos, plan domain.Plan) (domain.Plan, error) {
	for _, sec := range plan.Deleted {
		if err := r.Sections.Delete(ctx, sec.ID); err != nil {
			return domain.Plan{}, err
		}
	}
	stored := domain.Plan{
		Added:         make([]domain.Section, 0, len(plan.Added)),
		Deleted:       plan.Deleted,
		AddedStations: plan.AddedStations,
	}
	for _, sec := range plan.Added {
		saved, err := r.Sections.Create(ctx, sec)
		if err != nil {
			return domain.Plan{}, err
		}
		stored.Added = append(stored.Added, saved)
	}
	return stored, nil
}

// logChange records an applied plan at info level.
func logChange(ctx context.Context, log *slog.Logger, op string, c Change) {
	if c.Plan.Empty() {
		return
	}
	log.InfoContext(ctx, "line sections changed",
		slog.String("op", op),
		slog.String("line_id", c.Line.ID.String()),
		slog.Int("added", len(c.Plan.Added)),
		slog.Int("deleted", len(c.Plan.Deleted)),
		slog.Int("sections", len(c.Sections)),
	)
}
