package service_test

import (
	"context"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
	"github.com/pkordes/subway-planner/internal/repo"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs.

type mockStationRepo struct {
	create  func(ctx context.Context, name string) (domain.Station, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Station, error)
	list    func(ctx context.Context) ([]domain.Station, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockStationRepo) Create(ctx context.Context, name string) (domain.Station, error) {
	return m.create(ctx, name)
}
func (m *mockStationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Station, error) {
	return m.getByID(ctx, id)
}
func (m *mockStationRepo) List(ctx context.Context) ([]domain.Station, error) {
	return m.list(ctx)
}
func (m *mockStationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.StationRepo = (*mockStationRepo)(nil)

type mockLineRepo struct {
	create   func(ctx context.Context, line domain.Line) (domain.Line, error)
	getByID  func(ctx context.Context, id uuid.UUID) (domain.Line, error)
	lockByID func(ctx context.Context, id uuid.UUID) (domain.Line, error)
	list     func(ctx context.Context) ([]domain.Line, error)
	touch    func(ctx context.Context, id uuid.UUID) error
	delete   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockLineRepo) Create(ctx context.Context, line domain.Line) (domain.Line, error) {
	return m.create(ctx, line)
}
func (m *mockLineRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Line, error) {
	return m.getByID(ctx, id)
}
func (m *mockLineRepo) LockByID(ctx context.Context, id uuid.UUID) (domain.Line, error) {
	return m.lockByID(ctx, id)
}
func (m *mockLineRepo) List(ctx context.Context) ([]domain.Line, error) {
	return m.list(ctx)
}
func (m *mockLineRepo) Touch(ctx context.Context, id uuid.UUID) error {
	return m.touch(ctx, id)
}
func (m *mockLineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.LineRepo = (*mockLineRepo)(nil)

type mockSectionRepo struct {
	listByLine           func(ctx context.Context, lineID uuid.UUID) ([]domain.Section, error)
	listAll              func(ctx context.Context) ([]domain.Section, error)
	listLineIDsByStation func(ctx context.Context, stationID uuid.UUID) ([]uuid.UUID, error)
	create               func(ctx context.Context, section domain.Section) (domain.Section, error)
	delete               func(ctx context.Context, id uuid.UUID) error
}

func (m *mockSectionRepo) ListByLine(ctx context.Context, lineID uuid.UUID) ([]domain.Section, error) {
	return m.listByLine(ctx, lineID)
}
func (m *mockSectionRepo) ListAll(ctx context.Context) ([]domain.Section, error) {
	return m.listAll(ctx)
}
func (m *mockSectionRepo) ListLineIDsByStation(ctx context.Context, stationID uuid.UUID) ([]uuid.UUID, error) {
	return m.listLineIDsByStation(ctx, stationID)
}
func (m *mockSectionRepo) Create(ctx context.Context, section domain.Section) (domain.Section, error) {
	return m.create(ctx, section)
}
func (m *mockSectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.SectionRepo = (*mockSectionRepo)(nil)

// fakeNetwork is an in-memory database behind the mocks above. Its
// transactor snapshots the maps on entry and restores them when the unit of
// work fails, which is enough to observe commit/rollback in the services.
type fakeNetwork struct {
	stations map[uuid.UUID]domain.Station
	lines    map[uuid.UUID]domain.Line
	sections map[uuid.UUID]domain.Section

	locked  []uuid.UUID
	touched []uuid.UUID
	txCount int
}

func newFakeNetwork() *fakeNetwork {
	return &fakeNetwork{
		stations: map[uuid.UUID]domain.Station{},
		lines:    map[uuid.UUID]domain.Line{},
		sections: map[uuid.UUID]domain.Section{},
	}
}

func (f *fakeNetwork) addStation(name string) domain.Station {
	st := domain.Station{ID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)), Name: name}
	f.stations[st.ID] = st
	return st
}

func (f *fakeNetwork) addLine(name string) domain.Line {
	l := domain.Line{ID: uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)), Name: name}
	f.lines[l.ID] = l
	return l
}

func (f *fakeNetwork) addSection(line domain.Line, up, down domain.Station, d int) domain.Section {
	sec := domain.Section{ID: uuid.New(), LineID: line.ID, Up: up, Down: down, Distance: domain.Distance(d)}
	f.sections[sec.ID] = sec
	return sec
}

func (f *fakeNetwork) lineSections(lineID uuid.UUID) []domain.Section {
	out := []domain.Section{}
	for _, sec := range f.sections {
		if sec.LineID == lineID {
			out = append(out, sec)
		}
	}
	return out
}

func (f *fakeNetwork) repos() repo.Repos {
	return repo.Repos{
		Stations: &mockStationRepo{
			getByID: func(_ context.Context, id uuid.UUID) (domain.Station, error) {
				st, ok := f.stations[id]
				if !ok {
					return domain.Station{}, domain.ErrNotFound
				}
				return st, nil
			},
			list: func(_ context.Context) ([]domain.Station, error) {
				return nil, nil
			},
			delete: func(_ context.Context, id uuid.UUID) error {
				for _, sec := range f.sections {
					if sec.Up.ID == id || sec.Down.ID == id {
						return domain.ErrInvalidInput
					}
				}
				if _, ok := f.stations[id]; !ok {
					return domain.ErrNotFound
				}
				delete(f.stations, id)
				return nil
			},
		},
		Lines: &mockLineRepo{
			getByID: func(_ context.Context, id uuid.UUID) (domain.Line, error) {
				l, ok := f.lines[id]
				if !ok {
					return domain.Line{}, domain.ErrNotFound
				}
				return l, nil
			},
			lockByID: func(_ context.Context, id uuid.UUID) (domain.Line, error) {
				l, ok := f.lines[id]
				if !ok {
					return domain.Line{}, domain.ErrNotFound
				}
				f.locked = append(f.locked, id)
				return l, nil
			},
			touch: func(_ context.Context, id uuid.UUID) error {
				f.touched = append(f.touched, id)
				return nil
			},
		},
		Sections: &mockSectionRepo{
			listByLine: func(_ context.Context, lineID uuid.UUID) ([]domain.Section, error) {
				return f.lineSections(lineID), nil
			},
			listAll: func(_ context.Context) ([]domain.Section, error) {
				return slices.Collect(maps.Values(f.sections)), nil
			},
			listLineIDsByStation: func(_ context.Context, stationID uuid.UUID) ([]uuid.UUID, error) {
				seen := map[uuid.UUID]bool{}
				ids := []uuid.UUID{}
				for _, sec := range f.sections {
					if (sec.Up.ID == stationID || sec.Down.ID == stationID) && !seen[sec.LineID] {
						seen[sec.LineID] = true
						ids = append(ids, sec.LineID)
					}
				}
				return ids, nil
			},
			create: func(_ context.Context, sec domain.Section) (domain.Section, error) {
				for _, existing := range f.sections {
					if existing.LineID != sec.LineID {
						continue
					}
					if existing.Up.ID == sec.Up.ID || existing.Down.ID == sec.Down.ID {
						return domain.Section{}, domain.ErrDuplicate
					}
				}
				sec.ID = uuid.New()
				f.sections[sec.ID] = sec
				return sec, nil
			},
			delete: func(_ context.Context, id uuid.UUID) error {
				if _, ok := f.sections[id]; !ok {
					return domain.ErrNotFound
				}
				delete(f.sections, id)
				return nil
			},
		},
	}
}

// InTx makes fakeNetwork a repo.Transactor.
func (f *fakeNetwork) InTx(_ context.Context, fn func(repo.Repos) error) error {
	f.txCount++
	stations, lines, sections := maps.Clone(f.stations), maps.Clone(f.lines), maps.Clone(f.sections)
	if err := fn(f.repos()); err != nil {
		f.stations, f.lines, f.sections = stations, lines, sections
		return err
	}
	return nil
}

var _ repo.Transactor = (*fakeNetwork)(nil)
