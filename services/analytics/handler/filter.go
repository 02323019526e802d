package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// ParseFilterSpec coerces the query-string filter parameters into a typed
// spec. Coercion never fails the request: a malformed value leaves its
// filter inactive, and the sentinel gender values "todos"/"all" mean no
// gender filter.
func ParseFilterSpec(c echo.Context) models.FilterSpec {
	spec := models.FilterSpec{
		Category:     strings.TrimSpace(c.QueryParam("categoria")),
		Neighborhood: strings.TrimSpace(c.QueryParam("bairro")),
		CouponTypes:  utils.SplitCSVSet(c.QueryParam("tipoCupom")),
		DeviceType:   strings.TrimSpace(c.QueryParam("deviceType")),
	}

	if d, ok := utils.ParseDay(c.QueryParam("startDate")); ok {
		spec.StartDate = &d
	}
	if d, ok := utils.ParseDay(c.QueryParam("endDate")); ok {
		spec.EndDate = &d
	}

	if gender := strings.TrimSpace(c.QueryParam("gender")); gender != "" &&
		!strings.EqualFold(gender, "todos") && !strings.EqualFold(gender, "all") {
		spec.Gender = gender
	}

	spec.AgeMin, spec.AgeMax = parseAgeRange(c.QueryParam("ageRange"))

	if v, err := strconv.ParseFloat(strings.TrimSpace(c.QueryParam("minValue")), 64); err == nil {
		spec.MinValue = &v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(c.QueryParam("maxValue")), 64); err == nil {
		spec.MaxValue = &v
	}

	return spec
}

// parseAgeRange understands "18-25" (closed range), "60+" and "60-" (open
// upper bound). A range whose lower bound fails to parse deactivates the
// whole age filter; a bad upper bound keeps the lower bound only.
func parseAgeRange(s string) (*int, *int) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if stripped := strings.TrimSuffix(s, "+"); stripped != s {
		if v, ok := utils.ParseInt(stripped); ok {
			return &v, nil
		}
		return nil, nil
	}

	lowRaw, highRaw, _ := strings.Cut(s, "-")
	low, ok := utils.ParseInt(lowRaw)
	if !ok {
		return nil, nil
	}
	high, ok := utils.ParseInt(highRaw)
	if !ok {
		return &low, nil
	}
	return &low, &high
}
