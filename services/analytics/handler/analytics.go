package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/picmoney/dashboard-api/internal/pkg/logger"
	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
	"github.com/picmoney/dashboard-api/services/analytics"
)

// AnalyticsHandler handles HTTP requests for the dashboard analytics
// operations. Failures never leak internal detail; every unexpected error
// maps to the generic 500 envelope.
type AnalyticsHandler struct {
	analyticsUC analytics.AnalyticsUC
	cfg         *models.Config
	alerts      *alertStore
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	analyticsUC analytics.AnalyticsUC,
	cfg *models.Config,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: analyticsUC,
		cfg:         cfg,
		alerts:      newAlertStore(cfg.Alerts),
	}
}

func (h *AnalyticsHandler) fail(c echo.Context, endpoint string, err error) error {
	logger.Error("Analytics operation failed",
		logger.String("endpoint", endpoint),
		logger.ErrorField(err),
	)
	return utils.InternalServerErrorResponse(c, "")
}

// GetGeneralStats handles the headline summary request
func (h *AnalyticsHandler) GetGeneralStats(c echo.Context) error {
	stats, err := h.analyticsUC.GeneralStats(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "general-stats", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "General stats retrieved successfully", stats)
}

// GetTransactionsOverTime handles the daily series request
func (h *AnalyticsHandler) GetTransactionsOverTime(c echo.Context) error {
	series, err := h.analyticsUC.TransactionsOverTime(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "transactions-over-time", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction series retrieved successfully", series)
}

// GetTopCategories handles the category ranking request
func (h *AnalyticsHandler) GetTopCategories(c echo.Context) error {
	categories, err := h.analyticsUC.TopCategories(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "top-categories", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Top categories retrieved successfully", categories)
}

// GetCouponDistribution handles the coupon-type share request
func (h *AnalyticsHandler) GetCouponDistribution(c echo.Context) error {
	shares, err := h.analyticsUC.CouponDistribution(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "coupon-distribution", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Coupon distribution retrieved successfully", shares)
}

// GetStorePerformanceRanking handles the store ranking request
func (h *AnalyticsHandler) GetStorePerformanceRanking(c echo.Context) error {
	ranking, err := h.analyticsUC.StorePerformanceRanking(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "performance-ranking", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Store ranking retrieved successfully", ranking)
}

// GetRevenueByRegion handles the neighborhood revenue request
func (h *AnalyticsHandler) GetRevenueByRegion(c echo.Context) error {
	regions, err := h.analyticsUC.RevenueByRegion(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "revenue-by-region", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Revenue by region retrieved successfully", regions)
}

// GetCustomerSegments handles the demographic projection request
func (h *AnalyticsHandler) GetCustomerSegments(c echo.Context) error {
	segments, err := h.analyticsUC.CustomerSegments(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "customer-segments", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Customer segments retrieved successfully", segments)
}

// GetDetailedCategoryAnalysis handles the extended category report request
func (h *AnalyticsHandler) GetDetailedCategoryAnalysis(c echo.Context) error {
	analysis, err := h.analyticsUC.DetailedCategoryAnalysis(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "detailed-analysis", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Category analysis retrieved successfully", analysis)
}

// GetTimeDistribution handles the 24-hour histogram request
func (h *AnalyticsHandler) GetTimeDistribution(c echo.Context) error {
	dist, err := h.analyticsUC.TimeDistribution(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "time-distribution", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Time distribution retrieved successfully", dist)
}

// GetPeakHours handles the weekday-by-hour matrix request
func (h *AnalyticsHandler) GetPeakHours(c echo.Context) error {
	matrix, err := h.analyticsUC.PeakHours(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "peak-hours", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Peak hours retrieved successfully", matrix)
}

// GetPeriodDistribution handles the day-period bucket request
func (h *AnalyticsHandler) GetPeriodDistribution(c echo.Context) error {
	periods, err := h.analyticsUC.PeriodDistribution(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "period-distribution", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Period distribution retrieved successfully", periods)
}

// GetDailyParticipation handles the per-day engagement request
func (h *AnalyticsHandler) GetDailyParticipation(c echo.Context) error {
	daily, err := h.analyticsUC.DailyParticipation(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "daily-participation", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Daily participation retrieved successfully", daily)
}

// GetPedestrianHeatmap handles the foot-traffic map request. The
// show_penetracao flag narrows the samples to app holders.
func (h *AnalyticsHandler) GetPedestrianHeatmap(c echo.Context) error {
	appOnly := strings.EqualFold(c.QueryParam("show_penetracao"), "true")
	points, err := h.analyticsUC.PedestrianHeatmap(c.Request().Context(), appOnly)
	if err != nil {
		return h.fail(c, "pedestres-heatmap", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pedestrian heatmap retrieved successfully", points)
}

// GetStoreLocations handles the store map request
func (h *AnalyticsHandler) GetStoreLocations(c echo.Context) error {
	locations, err := h.analyticsUC.StoreLocations(c.Request().Context())
	if err != nil {
		return h.fail(c, "lojas-locations", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Store locations retrieved successfully", locations)
}

// GetPedestrianDensity handles the geohash-cell density request. Precision
// falls back to the configured default when absent or malformed.
func (h *AnalyticsHandler) GetPedestrianDensity(c echo.Context) error {
	var precision uint
	if v, err := strconv.ParseUint(c.QueryParam("precision"), 10, 8); err == nil {
		precision = uint(v)
	}
	appOnly := strings.EqualFold(c.QueryParam("show_penetracao"), "true")

	cells, err := h.analyticsUC.PedestrianDensity(c.Request().Context(), precision, appOnly)
	if err != nil {
		return h.fail(c, "pedestres-density", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pedestrian density retrieved successfully", cells)
}

// GetOperatingMargin handles the margin report request
func (h *AnalyticsHandler) GetOperatingMargin(c echo.Context) error {
	margin, err := h.analyticsUC.OperatingMargin(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "operating-margin", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Operating margin retrieved successfully", margin)
}

// GetNetRevenue handles the net-revenue report request
func (h *AnalyticsHandler) GetNetRevenue(c echo.Context) error {
	net, err := h.analyticsUC.NetRevenue(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "net-revenue", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Net revenue retrieved successfully", net)
}

// GetCouponPerformanceByType handles the per-type performance request
func (h *AnalyticsHandler) GetCouponPerformanceByType(c echo.Context) error {
	performance, err := h.analyticsUC.CouponPerformanceByType(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "performance-by-type", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Coupon performance retrieved successfully", performance)
}

// GetUsageTrends handles the per-type daily usage request
func (h *AnalyticsHandler) GetUsageTrends(c echo.Context) error {
	trend, err := h.analyticsUC.UsageTrends(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "usage-trends", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Usage trends retrieved successfully", trend)
}

// GetCouponValidationSummary handles the validation roll-up request
func (h *AnalyticsHandler) GetCouponValidationSummary(c echo.Context) error {
	summary, err := h.analyticsUC.CouponValidationSummary(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "coupon-summary", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Validation summary retrieved successfully", summary)
}

// GetPayoutTracking handles the month/store payout request
func (h *AnalyticsHandler) GetPayoutTracking(c echo.Context) error {
	records, err := h.analyticsUC.PayoutTracking(c.Request().Context(), ParseFilterSpec(c))
	if err != nil {
		return h.fail(c, "payout-tracking", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payout tracking retrieved successfully", records)
}

// GetFilterOptions handles the filter vocabulary request
func (h *AnalyticsHandler) GetFilterOptions(c echo.Context) error {
	opts, err := h.analyticsUC.FilterOptions(c.Request().Context())
	if err != nil {
		return h.fail(c, "filter-options", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Filter options retrieved successfully", opts)
}

// GetStatus handles the snapshot status request
func (h *AnalyticsHandler) GetStatus(c echo.Context) error {
	status, err := h.analyticsUC.Status(c.Request().Context())
	if err != nil {
		return h.fail(c, "status", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Status retrieved successfully", status)
}
