package handler

import (
	"errors"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/subway-planner/internal/domain"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestError is a failure detected in the handler before any service call:
// a bad path parameter, a malformed body, a failed validation tag.
type requestError struct {
	status int
	code   string
	msg    string
}

func (e *requestError) Error() string { return e.msg }

// domainErrors maps service sentinels to HTTP statuses. The first match wins.
var domainErrors = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrNoSuchStation, http.StatusNotFound, "no_such_station"},
	{domain.ErrDuplicate, http.StatusConflict, "duplicate"},
	{domain.ErrTopologyConflict, http.StatusConflict, "topology_conflict"},
	{domain.ErrLastSection, http.StatusConflict, "last_section"},
	{domain.ErrDistanceExceeded, http.StatusUnprocessableEntity, "distance_exceeded"},
	{domain.ErrUnreachable, http.StatusUnprocessableEntity, "unreachable"},
	{domain.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input"},
}

// writeError translates err into a JSON error response. Unknown errors become
// a 500 whose detail is logged but never sent to the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		code := reqErr.code
		if code == "" {
			code = "bad_request"
		}
		writeJSON(w, reqErr.status, ErrorResponse{Error: ErrorDetail{Code: code, Message: reqErr.msg}})
		return
	}

	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			writeJSON(w, m.status, ErrorResponse{Error: ErrorDetail{Code: m.code, Message: unwrapMessage(err)}})
			return
		}
	}

	s.log.ErrorContext(r.Context(), "request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
	)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{
		Code:    "internal_error",
		Message: "internal server error",
	}})
}

// unwrapMessage drops the "package.Type.Method" call-site segments that
// services and repos add, leaving the parts meant for a human.
// e.g. "service.SectionService.Insert: up station: repo.StationRepo.GetByID: not found"
// → "up station: not found"
func unwrapMessage(err error) string {
	parts := strings.Split(err.Error(), ": ")
	kept := parts[:0]
	for _, p := range parts {
		if strings.Count(p, ".") == 2 && !strings.ContainsAny(p, " \"'()") {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ": ")
}
