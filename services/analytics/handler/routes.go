package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/picmoney/dashboard-api/internal/utils"
)

// RegisterRoutes wires every dashboard endpoint under /api. Unmatched
// routes fall through to the standard 404 envelope.
func (h *AnalyticsHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/general-stats", h.GetGeneralStats)
	api.GET("/transactions-over-time", h.GetTransactionsOverTime)
	api.GET("/top-categories", h.GetTopCategories)
	api.GET("/coupon-distribution", h.GetCouponDistribution)
	api.GET("/revenue-by-region", h.GetRevenueByRegion)
	api.GET("/customer-segments", h.GetCustomerSegments)
	api.GET("/time-distribution", h.GetTimeDistribution)
	api.GET("/filter-options", h.GetFilterOptions)
	api.GET("/status", h.GetStatus)

	api.GET("/stores/performance-ranking", h.GetStorePerformanceRanking)
	api.GET("/categories/detailed-analysis", h.GetDetailedCategoryAnalysis)

	api.GET("/geographic/pedestres-heatmap", h.GetPedestrianHeatmap)
	api.GET("/geographic/lojas-locations", h.GetStoreLocations)
	api.GET("/geographic/pedestres-density", h.GetPedestrianDensity)

	api.GET("/time-analysis/peak-hours", h.GetPeakHours)
	api.GET("/temporal/daily-participation", h.GetDailyParticipation)
	api.GET("/temporal/period-distribution", h.GetPeriodDistribution)

	api.GET("/financial/operating-margin", h.GetOperatingMargin)
	api.GET("/financial/net-revenue", h.GetNetRevenue)

	api.GET("/coupons/performance-by-type", h.GetCouponPerformanceByType)
	api.GET("/coupons/usage-trends", h.GetUsageTrends)

	api.GET("/validation/coupon-summary", h.GetCouponValidationSummary)
	api.GET("/validation/payout-tracking", h.GetPayoutTracking)

	api.GET("/alerts/settings", h.GetAlertSettings)
	api.POST("/alerts/settings", h.UpdateAlertSettings)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return utils.NotFoundResponse(c, "")
	})
}
