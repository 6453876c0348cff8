package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
)

// CreateLineRequest is the body of POST /lines.
type CreateLineRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"omitempty,max=40"`
}

// LineResponse is the JSON shape of a line without its chain.
type LineResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineDetailResponse is a line with its stations and sections in order.
type LineDetailResponse struct {
	LineResponse
	Stations []StationRef      `json:"stations"`
	Sections []SectionResponse `json:"sections"`
	Length   int               `json:"length"`
}

// CreateLine handles POST /lines.
func (s *Server) CreateLine(w http.ResponseWriter, r *http.Request) {
	var req CreateLineRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	line, err := s.lines.Create(r.Context(), req.Name, req.Color)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, lineToResponse(line))
}

// ListLines handles GET /lines.
func (s *Server) ListLines(w http.ResponseWriter, r *http.Request) {
	lines, err := s.lines.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]LineResponse, len(lines))
	for i, l := range lines {
		out[i] = lineToResponse(l)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetLine handles GET /lines/{lineId}.
func (s *Server) GetLine(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "lineId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	detail, err := s.lines.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, LineDetailResponse{
		LineResponse: lineToResponse(detail.Line),
		Stations:     stationRefs(detail.Stations),
		Sections:     sectionsToResponse(detail.Sections),
		Length:       detail.Length.Int(),
	})
}

// DeleteLine handles DELETE /lines/{lineId}.
func (s *Server) DeleteLine(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "lineId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.lines.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func lineToResponse(l domain.Line) LineResponse {
	return LineResponse{
		ID:        l.ID,
		Name:      l.Name,
		Color:     l.Color,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
