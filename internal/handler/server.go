// Package handler implements the HTTP handlers for the subway planner API.
// All handlers are methods on Server. Methods are split into resource files
// (station.go, line.go, ...) but share the same struct and its dependencies.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
	"github.com/pkordes/subway-planner/internal/route"
	"github.com/pkordes/subway-planner/internal/service"
)

// The interfaces below are declared here, in the consumer package, so handler
// tests can inject mocks without a database or the service layer.

// StationServicer is the station directory.
type StationServicer interface {
	Create(ctx context.Context, name string) (domain.Station, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Station, error)
	List(ctx context.Context) ([]domain.Station, error)
	Delete(ctx context.Context, id uuid.UUID, teardown bool) error
}

// LineServicer is the line directory.
type LineServicer interface {
	Create(ctx context.Context, name, color string) (domain.Line, error)
	Get(ctx context.Context, id uuid.UUID) (domain.LineDetail, error)
	List(ctx context.Context) ([]domain.Line, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SectionServicer edits one line's chain.
type SectionServicer interface {
	Insert(ctx context.Context, lineID, upID, downID uuid.UUID, distance int) (service.Change, error)
	RemoveStation(ctx context.Context, lineID, stationID uuid.UUID, teardown bool) (service.Change, error)
}

// PathServicer answers route queries.
type PathServicer interface {
	Find(ctx context.Context, sourceID, targetID uuid.UUID) (route.Route, error)
}

// ExportServicer produces the flat network export.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Pinger reports whether the database is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services bundles the Server's dependencies. A nil DB disables the health
// check's database ping; a nil Logger discards error logs.
type Services struct {
	Stations StationServicer
	Lines    LineServicer
	Sections SectionServicer
	Paths    PathServicer
	Export   ExportServicer
	DB       Pinger
	Logger   *slog.Logger
	OpenAPI  []byte
}

// Server holds the handler dependencies.
type Server struct {
	stations StationServicer
	lines    LineServicer
	sections SectionServicer
	paths    PathServicer
	export   ExportServicer
	db       Pinger
	log      *slog.Logger
	openAPI  []byte
	validate *validator.Validate
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svc Services) *Server {
	log := svc.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		stations: svc.Stations,
		lines:    svc.Lines,
		sections: svc.Sections,
		paths:    svc.Paths,
		export:   svc.Export,
		db:       svc.DB,
		log:      log,
		openAPI:  svc.OpenAPI,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes returns a chi router with every endpoint registered. Cross-cutting
// middleware (request ID, logging, CORS) is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/stations", func(r chi.Router) {
		r.Post("/", s.CreateStation)
		r.Get("/", s.ListStations)
		r.Get("/{stationId}", s.GetStation)
		r.Delete("/{stationId}", s.DeleteStation)
	})

	r.Route("/lines", func(r chi.Router) {
		r.Post("/", s.CreateLine)
		r.Get("/", s.ListLines)
		r.Get("/{lineId}", s.GetLine)
		r.Delete("/{lineId}", s.DeleteLine)
		r.Post("/{lineId}/sections", s.InsertSection)
		r.Delete("/{lineId}/stations/{stationId}", s.RemoveStation)
	})

	r.Get("/paths", s.FindPath)
	r.Get("/export", s.GetExport)

	return r
}
