package handler

import "net/http"

// PathResponse is the body of GET /paths.
type PathResponse struct {
	Stations []StationRef `json:"stations"`
	Distance int          `json:"distance"`
	Fare     int          `json:"fare"`
}

// FindPath handles GET /paths?source={stationId}&target={stationId}.
// The route may change lines wherever two lines share a station.
func (s *Server) FindPath(w http.ResponseWriter, r *http.Request) {
	source, err := queryUUID(r, "source")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	target, err := queryUUID(r, "target")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rt, err := s.paths.Find(r.Context(), source, target)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PathResponse{
		Stations: stationRefs(rt.Stations),
		Distance: rt.Distance,
		Fare:     rt.Fare,
	})
}
