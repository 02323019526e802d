package usecase

import (
	"context"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// GeneralStats summarizes the filtered transaction set into the headline
// dashboard numbers. Monetary totals carry at most two decimals and the
// average ticket is 0 on an empty set, never NaN.
func (uc *AnalyticsUC) GeneralStats(ctx context.Context, filter models.FilterSpec) (*models.GeneralStats, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	totalRevenue := sumBy(filtered, transactionValue)
	totalCommission := sumBy(filtered, transactionCommission)

	return &models.GeneralStats{
		TotalTransactions: len(filtered),
		TotalRevenue:      utils.Round2(totalRevenue),
		AvgTicket:         utils.SafeDivide(totalRevenue, float64(len(filtered))),
		TotalCommission:   utils.Round2(totalCommission),
		UniqueStores:      distinctCount(filtered, transactionStore),
		UniqueCustomers:   distinctCount(filtered, transactionPhone),
	}, nil
}

// CustomerSegments projects each filtered transaction into a demographic
// row. Unparsable ages become 0 and a missing gender gets the explicit
// not-informed marker.
func (uc *AnalyticsUC) CustomerSegments(ctx context.Context, filter models.FilterSpec) ([]models.CustomerSegment, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	segments := make([]models.CustomerSegment, 0, len(filtered))
	for _, t := range filtered {
		segments = append(segments, models.CustomerSegment{
			Age:       utils.ParseIntOrZero(t.Age),
			AvgTicket: t.CouponValue,
			Gender:    utils.OrDefault(t.Gender, "Não informado"),
		})
	}
	return segments, nil
}

// FilterOptions lists the distinct values the dashboard can filter on,
// computed over the whole snapshot rather than a filtered subset.
func (uc *AnalyticsUC) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	snapshot := uc.datasetRepo.GetSnapshot()

	return &models.FilterOptions{
		Categories:    distinctSortedField(snapshot.Transactions, func(t models.Transaction) string { return t.StoreCategory }),
		Neighborhoods: distinctSortedField(snapshot.Transactions, func(t models.Transaction) string { return t.Neighborhood }),
		CouponTypes:   distinctSortedField(snapshot.Transactions, func(t models.Transaction) string { return t.CouponType }),
	}, nil
}

// Status reports snapshot row counts and the load timestamp.
func (uc *AnalyticsUC) Status(ctx context.Context) (*models.Status, error) {
	snapshot := uc.datasetRepo.GetSnapshot()

	return &models.Status{
		Status:     "ok",
		Timestamp:  models.Now(),
		DataLoaded: !snapshot.LoadedAt.IsZero(),
		LoadedAt:   snapshot.LoadedAt,
		Records: models.RecordCounts{
			Transactions: len(snapshot.Transactions),
			Stores:       len(snapshot.Stores),
			Customers:    len(snapshot.Customers),
			Pedestrians:  len(snapshot.Pedestrians),
		},
	}, nil
}

func distinctSortedField[T any](records []T, field func(T) string) []string {
	values := make([]string, 0, len(records))
	for _, r := range records {
		values = append(values, field(r))
	}
	return utils.DistinctSorted(values)
}
