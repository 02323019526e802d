package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterContext(t *testing.T, query string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/general-stats?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParseFilterSpecEmptyQuery(t *testing.T) {
	spec := ParseFilterSpec(filterContext(t, ""))

	assert.True(t, spec.IsEmpty())
}

func TestParseFilterSpecDates(t *testing.T) {
	spec := ParseFilterSpec(filterContext(t, "startDate=2025-08-01&endDate=2025-08-15"))

	require.NotNil(t, spec.StartDate)
	require.NotNil(t, spec.EndDate)
	assert.Equal(t, "2025-08-01", spec.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-08-15", spec.EndDate.Format("2006-01-02"))
}

func TestParseFilterSpecMalformedDateIsInactive(t *testing.T) {
	spec := ParseFilterSpec(filterContext(t, "startDate=yesterday"))

	assert.Nil(t, spec.StartDate)
}

func TestParseFilterSpecGenderSentinels(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"gender=Feminino", "Feminino"},
		{"gender=Todos", ""},
		{"gender=todos", ""},
		{"gender=all", ""},
		{"gender=", ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			spec := ParseFilterSpec(filterContext(t, tt.query))
			assert.Equal(t, tt.want, spec.Gender)
		})
	}
}

func TestParseFilterSpecCouponTypes(t *testing.T) {
	spec := ParseFilterSpec(filterContext(t, "tipoCupom=Desconto,Cashback,"))

	assert.Equal(t, []string{"desconto", "cashback"}, spec.CouponTypes)
}

func TestParseFilterSpecAgeRange(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMin *int
		wantMax *int
	}{
		{"closed range", "ageRange=18-25", intPtr(18), intPtr(25)},
		{"open upper with plus", "ageRange=60%2B", intPtr(60), nil},
		{"open upper with dash", "ageRange=60-", intPtr(60), nil},
		{"malformed lower bound", "ageRange=abc-25", nil, nil},
		{"malformed whole value", "ageRange=whatever", nil, nil},
		{"absent", "", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ParseFilterSpec(filterContext(t, tt.query))
			assert.Equal(t, tt.wantMin, spec.AgeMin)
			assert.Equal(t, tt.wantMax, spec.AgeMax)
		})
	}
}

func TestParseFilterSpecValueBounds(t *testing.T) {
	spec := ParseFilterSpec(filterContext(t, "minValue=5.50&maxValue=abc"))

	require.NotNil(t, spec.MinValue)
	assert.Equal(t, 5.50, *spec.MinValue)
	assert.Nil(t, spec.MaxValue)
}

func TestParseFilterSpecDeviceTypeIsCarriedButInert(t *testing.T) {
	spec := ParseFilterSpec(filterContext(t, "deviceType=ios"))

	assert.Equal(t, "ios", spec.DeviceType)
	// the spec still counts as empty for filtering purposes
	assert.True(t, spec.IsEmpty())
}

func intPtr(v int) *int {
	return &v
}
