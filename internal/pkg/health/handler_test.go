package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfo(t *testing.T) {
	t.Run("Default build info structure", func(t *testing.T) {
		assert.Equal(t, "development", DefaultBuildInfo.Version)
		assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
		assert.Equal(t, "unknown", DefaultBuildInfo.BuildTime)
		assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	})
}

func TestNewPingHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewPingHandler("analytics-api")
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "analytics-api", info.ServiceName)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		ready      ReadyFunc
		wantStatus int
	}{
		{name: "health always ok", path: "/health", ready: nil, wantStatus: http.StatusOK},
		{name: "healthz always ok", path: "/healthz", ready: nil, wantStatus: http.StatusOK},
		{name: "ready with nil check", path: "/ready", ready: nil, wantStatus: http.StatusOK},
		{name: "ready when loaded", path: "/ready", ready: func() bool { return true }, wantStatus: http.StatusOK},
		{name: "not ready before load", path: "/ready", ready: func() bool { return false }, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			RegisterHealthEndpoints(e, "analytics-api", tt.ready)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
