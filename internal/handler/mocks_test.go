package handler_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
	"github.com/pkordes/subway-planner/internal/handler"
	"github.com/pkordes/subway-planner/internal/route"
	"github.com/pkordes/subway-planner/internal/service"
)

// Hand-written test doubles for the handler's consumer interfaces.
// Each method is a function field; set only the ones a test needs.

type mockStations struct {
	create  func(ctx context.Context, name string) (domain.Station, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Station, error)
	list    func(ctx context.Context) ([]domain.Station, error)
	delete  func(ctx context.Context, id uuid.UUID, teardown bool) error
}

func (m *mockStations) Create(ctx context.Context, name string) (domain.Station, error) {
	return m.create(ctx, name)
}
func (m *mockStations) GetByID(ctx context.Context, id uuid.UUID) (domain.Station, error) {
	return m.getByID(ctx, id)
}
func (m *mockStations) List(ctx context.Context) ([]domain.Station, error) {
	return m.list(ctx)
}
func (m *mockStations) Delete(ctx context.Context, id uuid.UUID, teardown bool) error {
	return m.delete(ctx, id, teardown)
}

var _ handler.StationServicer = (*mockStations)(nil)

type mockLines struct {
	create func(ctx context.Context, name, color string) (domain.Line, error)
	get    func(ctx context.Context, id uuid.UUID) (domain.LineDetail, error)
	list   func(ctx context.Context) ([]domain.Line, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockLines) Create(ctx context.Context, name, color string) (domain.Line, error) {
	return m.create(ctx, name, color)
}
func (m *mockLines) Get(ctx context.Context, id uuid.UUID) (domain.LineDetail, error) {
	return m.get(ctx, id)
}
func (m *mockLines) List(ctx context.Context) ([]domain.Line, error) {
	return m.list(ctx)
}
func (m *mockLines) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.LineServicer = (*mockLines)(nil)

type mockSections struct {
	insert        func(ctx context.Context, lineID, upID, downID uuid.UUID, distance int) (service.Change, error)
	removeStation func(ctx context.Context, lineID, stationID uuid.UUID, teardown bool) (service.Change, error)
}

func (m *mockSections) Insert(ctx context.Context, lineID, upID, downID uuid.UUID, distance int) (service.Change, error) {
	return m.insert(ctx, lineID, upID, downID, distance)
}
func (m *mockSections) RemoveStation(ctx context.Context, lineID, stationID uuid.UUID, teardown bool) (service.Change, error) {
	return m.removeStation(ctx, lineID, stationID, teardown)
}

var _ handler.SectionServicer = (*mockSections)(nil)

type mockPaths struct {
	find func(ctx context.Context, sourceID, targetID uuid.UUID) (route.Route, error)
}

func (m *mockPaths) Find(ctx context.Context, sourceID, targetID uuid.UUID) (route.Route, error) {
	return m.find(ctx, sourceID, targetID)
}

var _ handler.PathServicer = (*mockPaths)(nil)

type mockExport struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExport) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExport)(nil)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

var _ handler.Pinger = (*mockPinger)(nil)
