package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
	"github.com/picmoney/dashboard-api/services/analytics/mocks"
)

func newTestHandler(t *testing.T) (*AnalyticsHandler, *mocks.MockAnalyticsUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockAnalyticsUC(ctrl)
	h := NewAnalyticsHandler(uc, &models.Config{
		Alerts: models.AlertsConfig{MinRevenue: 1000, MaxCouponUsagePercent: 80},
	})
	return h, uc
}

func doRequest(t *testing.T, h *AnalyticsHandler, method, target string, handlerFunc echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handlerFunc(c))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestGetGeneralStatsSuccess(t *testing.T) {
	h, uc := newTestHandler(t)
	uc.EXPECT().
		GeneralStats(gomock.Any(), gomock.Any()).
		Return(&models.GeneralStats{TotalTransactions: 3, TotalRevenue: 60.00, AvgTicket: 20.00}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/general-stats", h.GetGeneralStats)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), data["totalTransactions"])
	assert.Equal(t, 60.00, data["totalRevenue"])
	assert.Equal(t, 20.00, data["avgTicket"])
}

func TestGetGeneralStatsPassesParsedFilter(t *testing.T) {
	h, uc := newTestHandler(t)
	uc.EXPECT().
		GeneralStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filter models.FilterSpec) (*models.GeneralStats, error) {
			assert.Equal(t, "Centro", filter.Neighborhood)
			require.NotNil(t, filter.StartDate)
			return &models.GeneralStats{}, nil
		})

	rec := doRequest(t, h, http.MethodGet, "/api/general-stats?bairro=Centro&startDate=2025-08-01", h.GetGeneralStats)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFailureReturnsGenericError(t *testing.T) {
	h, uc := newTestHandler(t)
	uc.EXPECT().
		GeneralStats(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("snapshot corrupted: table transacoes"))

	rec := doRequest(t, h, http.MethodGet, "/api/general-stats", h.GetGeneralStats)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Internal server error", envelope.Error)
	assert.Equal(t, http.StatusInternalServerError, envelope.Code)
	// no internal detail leaks
	assert.NotContains(t, rec.Body.String(), "snapshot corrupted")
}

func TestGetPedestrianHeatmapFlag(t *testing.T) {
	h, uc := newTestHandler(t)
	uc.EXPECT().PedestrianHeatmap(gomock.Any(), true).Return([]models.HeatmapPoint{}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/geographic/pedestres-heatmap?show_penetracao=true", h.GetPedestrianHeatmap)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPedestrianDensityParsesPrecision(t *testing.T) {
	h, uc := newTestHandler(t)
	uc.EXPECT().PedestrianDensity(gomock.Any(), uint(5), false).Return([]models.DensityCell{}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/geographic/pedestres-density?precision=5", h.GetPedestrianDensity)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPedestrianDensityMalformedPrecisionFallsBack(t *testing.T) {
	h, uc := newTestHandler(t)
	// zero precision lets the usecase apply its configured default
	uc.EXPECT().PedestrianDensity(gomock.Any(), uint(0), false).Return([]models.DensityCell{}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/geographic/pedestres-density?precision=huge", h.GetPedestrianDensity)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetStatusSuccess(t *testing.T) {
	h, uc := newTestHandler(t)
	uc.EXPECT().Status(gomock.Any()).Return(&models.Status{Status: "ok"}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/status", h.GetStatus)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouteNotFoundReturns404Envelope(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()
	h.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/api/no-such-endpoint", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Resource not found", envelope.Error)
}
