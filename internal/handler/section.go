package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
	"github.com/pkordes/subway-planner/internal/service"
)

// InsertSectionRequest is the body of POST /lines/{lineId}/sections.
type InsertSectionRequest struct {
	UpStationID   uuid.UUID `json:"up_station_id" validate:"required"`
	DownStationID uuid.UUID `json:"down_station_id" validate:"required"`
	Distance      int       `json:"distance" validate:"required,gt=0"`
}

// SectionResponse is the JSON shape of one section.
type SectionResponse struct {
	ID          uuid.UUID  `json:"id"`
	UpStation   StationRef `json:"up_station"`
	DownStation StationRef `json:"down_station"`
	Distance    int        `json:"distance"`
}

// ChangeResponse reports what a ledger edit did to a line and what the line
// looks like afterwards.
type ChangeResponse struct {
	LineID        uuid.UUID         `json:"line_id"`
	Added         []SectionResponse `json:"added"`
	Deleted       []SectionResponse `json:"deleted"`
	AddedStations []StationRef      `json:"added_stations"`
	Sections      []SectionResponse `json:"sections"`
}

// InsertSection handles POST /lines/{lineId}/sections.
func (s *Server) InsertSection(w http.ResponseWriter, r *http.Request) {
	lineID, err := pathUUID(r, "lineId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req InsertSectionRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	change, err := s.sections.Insert(r.Context(), lineID, req.UpStationID, req.DownStationID, req.Distance)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, changeToResponse(change))
}

// RemoveStation handles DELETE /lines/{lineId}/stations/{stationId}?teardown=.
// Removing a station that is not on the line succeeds with an empty change.
func (s *Server) RemoveStation(w http.ResponseWriter, r *http.Request) {
	lineID, err := pathUUID(r, "lineId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	stationID, err := pathUUID(r, "stationId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	teardown, err := queryBool(r, "teardown")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	change, err := s.sections.RemoveStation(r.Context(), lineID, stationID, teardown)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, changeToResponse(change))
}

// --- mapping helpers --------------------------------------------------------

func sectionToResponse(sec domain.Section) SectionResponse {
	return SectionResponse{
		ID:          sec.ID,
		UpStation:   StationRef{ID: sec.Up.ID, Name: sec.Up.Name},
		DownStation: StationRef{ID: sec.Down.ID, Name: sec.Down.Name},
		Distance:    sec.Distance.Int(),
	}
}

func sectionsToResponse(sections []domain.Section) []SectionResponse {
	out := make([]SectionResponse, len(sections))
	for i, sec := range sections {
		out[i] = sectionToResponse(sec)
	}
	return out
}

func changeToResponse(c service.Change) ChangeResponse {
	return ChangeResponse{
		LineID:        c.Line.ID,
		Added:         sectionsToResponse(c.Plan.Added),
		Deleted:       sectionsToResponse(c.Plan.Deleted),
		AddedStations: stationRefs(c.Plan.AddedStations),
		Sections:      sectionsToResponse(c.Sections),
	}
}
