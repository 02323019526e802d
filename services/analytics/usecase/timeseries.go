package usecase

import (
	"context"
	"sort"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// TransactionsOverTime groups the filtered transactions by calendar day and
// returns the series in ascending date order.
func (uc *AnalyticsUC) TransactionsOverTime(ctx context.Context, filter models.FilterSpec) ([]models.TimeSeriesPoint, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	groups := groupBy(filtered, func(t models.Transaction) string { return t.Date })
	days := make([]string, 0, len(groups))
	for day := range groups {
		days = append(days, day)
	}
	sortDayKeysAsc(days)

	series := make([]models.TimeSeriesPoint, 0, len(days))
	for _, day := range days {
		rows := groups[day]
		series = append(series, models.TimeSeriesPoint{
			Date:        day,
			Count:       len(rows),
			Value:       utils.Round2(sumBy(rows, transactionValue)),
			Commission:  utils.Round2(sumBy(rows, transactionCommission)),
			ActiveUsers: distinctCount(rows, transactionPhone),
		})
	}
	return series, nil
}

// DailyParticipation reports per-day engagement. The participation rate is
// distinct customers over transaction count, as a 2-decimal percentage.
func (uc *AnalyticsUC) DailyParticipation(ctx context.Context, filter models.FilterSpec) ([]models.DailyParticipation, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	groups := groupBy(filtered, func(t models.Transaction) string { return t.Date })
	days := make([]string, 0, len(groups))
	for day := range groups {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]models.DailyParticipation, 0, len(days))
	for _, day := range days {
		rows := groups[day]
		revenue := sumBy(rows, transactionValue)
		customers := distinctCount(rows, transactionPhone)
		out = append(out, models.DailyParticipation{
			Date:              day,
			Transactions:      len(rows),
			Revenue:           utils.Round2(revenue),
			AvgTicket:         utils.SafeDivide(revenue, float64(len(rows))),
			UniqueCustomers:   customers,
			UniqueStores:      distinctCount(rows, transactionStore),
			ParticipationRate: utils.RatioPercent(float64(customers), float64(len(rows))),
		})
	}
	return out, nil
}

// UsageTrends breaks each day down by coupon type. Days sort ascending and
// the types within a day sort by name so the series is deterministic.
func (uc *AnalyticsUC) UsageTrends(ctx context.Context, filter models.FilterSpec) ([]models.UsageTrendPoint, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	groups := groupBy(filtered, func(t models.Transaction) string { return t.Date })
	days := make([]string, 0, len(groups))
	for day := range groups {
		days = append(days, day)
	}
	sort.Strings(days)

	trend := make([]models.UsageTrendPoint, 0, len(days))
	for _, day := range days {
		byType := groupBy(groups[day], couponTypeOrDefault)
		types := make([]string, 0, len(byType))
		for typ := range byType {
			types = append(types, typ)
		}
		sort.Strings(types)

		point := models.UsageTrendPoint{Date: day, Types: make([]models.TypeUsage, 0, len(types))}
		for _, typ := range types {
			rows := byType[typ]
			point.Types = append(point.Types, models.TypeUsage{
				Type:  typ,
				Count: len(rows),
				Value: utils.Round2(sumBy(rows, transactionValue)),
			})
		}
		trend = append(trend, point)
	}
	return trend, nil
}

func couponTypeOrDefault(t models.Transaction) string {
	return utils.OrDefault(t.CouponType, "Não informado")
}
