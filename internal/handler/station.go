package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
)

// CreateStationRequest is the body of POST /stations.
type CreateStationRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// StationResponse is the JSON shape of a station.
type StationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// StationRef is the short form of a station used inside other resources.
type StationRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CreateStation handles POST /stations.
func (s *Server) CreateStation(w http.ResponseWriter, r *http.Request) {
	var req CreateStationRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	st, err := s.stations.Create(r.Context(), req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, stationToResponse(st))
}

// ListStations handles GET /stations.
func (s *Server) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := s.stations.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]StationResponse, len(stations))
	for i, st := range stations {
		out[i] = stationToResponse(st)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetStation handles GET /stations/{stationId}.
func (s *Server) GetStation(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "stationId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	st, err := s.stations.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stationToResponse(st))
}

// DeleteStation handles DELETE /stations/{stationId}?teardown=.
// The station is first removed from every line; ?teardown=true also lets it
// remove the last section of a line.
func (s *Server) DeleteStation(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "stationId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	teardown, err := queryBool(r, "teardown")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.stations.Delete(r.Context(), id, teardown); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func stationToResponse(st domain.Station) StationResponse {
	return StationResponse{ID: st.ID, Name: st.Name, CreatedAt: st.CreatedAt}
}

func stationRefs(stations []domain.Station) []StationRef {
	out := make([]StationRef, len(stations))
	for i, st := range stations {
		out[i] = StationRef{ID: st.ID, Name: st.Name}
	}
	return out
}
