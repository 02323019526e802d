package analytics

import (
	"context"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/picmoney/dashboard-api/services/analytics AnalyticsUC

// AnalyticsUC represents the analytics usecase interface. Every operation is
// a pure read over the startup snapshot; the filter spec narrows the
// transaction set before aggregation.
type AnalyticsUC interface {
	// scalar and time-series summaries
	GeneralStats(ctx context.Context, filter models.FilterSpec) (*models.GeneralStats, error)
	TransactionsOverTime(ctx context.Context, filter models.FilterSpec) ([]models.TimeSeriesPoint, error)

	// rankings and distributions
	TopCategories(ctx context.Context, filter models.FilterSpec) ([]models.CategorySummary, error)
	CouponDistribution(ctx context.Context, filter models.FilterSpec) ([]models.CouponTypeShare, error)
	StorePerformanceRanking(ctx context.Context, filter models.FilterSpec) ([]models.StoreRanking, error)
	RevenueByRegion(ctx context.Context, filter models.FilterSpec) ([]models.RegionRevenue, error)
	CustomerSegments(ctx context.Context, filter models.FilterSpec) ([]models.CustomerSegment, error)
	DetailedCategoryAnalysis(ctx context.Context, filter models.FilterSpec) ([]models.CategoryAnalysis, error)

	// temporal analysis
	TimeDistribution(ctx context.Context, filter models.FilterSpec) ([]models.HourCount, error)
	PeakHours(ctx context.Context, filter models.FilterSpec) ([]models.WeekdayHours, error)
	PeriodDistribution(ctx context.Context, filter models.FilterSpec) ([]models.PeriodStats, error)
	DailyParticipation(ctx context.Context, filter models.FilterSpec) ([]models.DailyParticipation, error)

	// geographic projections
	PedestrianHeatmap(ctx context.Context, appOnly bool) ([]models.HeatmapPoint, error)
	StoreLocations(ctx context.Context) ([]models.StoreLocation, error)
	PedestrianDensity(ctx context.Context, precision uint, appOnly bool) ([]models.DensityCell, error)

	// financial analysis
	OperatingMargin(ctx context.Context, filter models.FilterSpec) (*models.OperatingMargin, error)
	NetRevenue(ctx context.Context, filter models.FilterSpec) (*models.NetRevenue, error)
	CouponPerformanceByType(ctx context.Context, filter models.FilterSpec) ([]models.CouponTypePerformance, error)
	UsageTrends(ctx context.Context, filter models.FilterSpec) ([]models.UsageTrendPoint, error)

	// validation and payout roll-ups
	CouponValidationSummary(ctx context.Context, filter models.FilterSpec) ([]models.CouponValidationSummary, error)
	PayoutTracking(ctx context.Context, filter models.FilterSpec) ([]models.PayoutRecord, error)

	// dashboard support
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
	Status(ctx context.Context) (*models.Status, error)
}
