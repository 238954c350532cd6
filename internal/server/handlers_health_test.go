package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doGet(srv *Server, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func TestHandleLiveness(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doGet(srv, "/health/live")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
}

func TestHandleReadiness_NoChecks(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doGet(srv, "/health/ready")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ready")
}

func TestHandleReadiness_PassingCheck(t *testing.T) {
	check := HealthCheck{Name: "youtube", Check: func(context.Context) error { return nil }}
	srv := newTestServer(t, &mockAppService{}, check)

	rec := doGet(srv, "/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleReadiness_FailingCheck(t *testing.T) {
	check := HealthCheck{Name: "youtube", Check: func(context.Context) error { return errors.New("api unreachable") }}
	srv := newTestServer(t, &mockAppService{}, check)

	rec := doGet(srv, "/health/ready")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp["status"])
	assert.Equal(t, "youtube", resp["failed_check"])
	assert.Equal(t, "api unreachable", resp["error"])
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doGet(srv, "/version")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "version")
	assert.Contains(t, resp, "commit")
	assert.Contains(t, resp, "go_version")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doGet(srv, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
