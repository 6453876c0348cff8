package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

// writeJSON encodes body as the JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeBody decodes a JSON request body into dst and validates it.
// Unknown fields are rejected so typos in field names surface as 400s.
func (s *Server) decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return &requestError{status: http.StatusBadRequest, msg: "request body is required"}
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &requestError{status: http.StatusRequestEntityTooLarge, msg: "request body too large"}
		}
		return &requestError{status: http.StatusBadRequest, msg: "malformed JSON: " + err.Error()}
	}
	if err := s.validate.Struct(dst); err != nil {
		return &requestError{status: http.StatusUnprocessableEntity, code: "validation_error", msg: validationMessage(err)}
	}
	return nil
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// pathUUID binds a UUID path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf("invalid %s: %v", name, err)}
	}
	return id, nil
}

// queryUUID binds a required UUID query parameter.
func queryUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := runtime.BindQueryParameter("form", true, true, name, r.URL.Query(), &id); err != nil {
		return uuid.Nil, &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf("invalid %s: %v", name, err)}
	}
	return id, nil
}

// queryBool binds an optional boolean query parameter; absent means false.
func queryBool(r *http.Request, name string) (bool, error) {
	var v bool
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		return false, &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf("invalid %s: %v", name, err)}
	}
	return v, nil
}
