package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/subway-planner/internal/handler"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	rec := serve(t, handler.Services{}, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[handler.HealthResponse](t, rec).Status)
}

func TestGetHealth_DatabaseUp(t *testing.T) {
	rec := serve(t, handler.Services{DB: &mockPinger{}}, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[handler.HealthResponse](t, rec)
	assert.Equal(t, "up", body.Database)
}

func TestGetHealth_DatabaseDown(t *testing.T) {
	rec := serve(t, handler.Services{DB: &mockPinger{err: errors.New("dial tcp: refused")}}, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", decode[handler.HealthResponse](t, rec).Status)
}

func TestGetOpenAPI(t *testing.T) {
	doc := []byte("openapi: 3.0.3\n")
	rec := serve(t, handler.Services{OpenAPI: doc}, http.MethodGet, "/openapi.yaml", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Equal(t, string(doc), rec.Body.String())
}
