package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/subway-planner/internal/domain"
	"github.com/pkordes/subway-planner/internal/repo"
	"github.com/pkordes/subway-planner/testutil"
)

// newTestRepos returns repositories bound to one transaction that is rolled
// back when the test finishes.
func newTestRepos(t *testing.T) repo.Repos {
	t.Helper()
	return repo.NewRepos(testutil.NewTx(t))
}

func mustCreateStation(t *testing.T, r repo.StationRepo, name string) domain.Station {
	t.Helper()
	st, err := r.Create(context.Background(), name)
	require.NoError(t, err, "create station %q", name)
	return st
}

func mustCreateLine(t *testing.T, r repo.LineRepo, name string) domain.Line {
	t.Helper()
	l, err := r.Create(context.Background(), domain.Line{Name: name, Color: "bg-green-600"})
	require.NoError(t, err, "create line %q", name)
	return l
}

func mustCreateSection(t *testing.T, r repo.SectionRepo, line domain.Line, up, down domain.Station, d int) domain.Section {
	t.Helper()
	sec, err := r.Create(context.Background(), domain.Section{
		LineID: line.ID, Up: up, Down: down, Distance: domain.Distance(d),
	})
	require.NoError(t, err, "create section %s->%s", up.Name, down.Name)
	return sec
}
