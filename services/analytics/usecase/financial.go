package usecase

import (
	"context"
	"sort"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// monthOf truncates a calendar-day field to its YYYY-MM prefix
func monthOf(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}

// OperatingMargin reports gross revenue against commission costs, overall
// and per month. Margins are 2-decimal percentages, 0 when revenue is 0.
func (uc *AnalyticsUC) OperatingMargin(ctx context.Context, filter models.FilterSpec) (*models.OperatingMargin, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	totalRevenue := sumBy(filtered, transactionValue)
	totalCosts := sumBy(filtered, transactionCommission)

	groups := groupBy(filtered, func(t models.Transaction) string { return monthOf(t.Date) })
	months := make([]string, 0, len(groups))
	for month := range groups {
		months = append(months, month)
	}
	sort.Strings(months)

	monthly := make([]models.MonthlyMargin, 0, len(months))
	for _, month := range months {
		rows := groups[month]
		revenue := sumBy(rows, transactionValue)
		costs := sumBy(rows, transactionCommission)
		monthly = append(monthly, models.MonthlyMargin{
			Month:        month,
			Revenue:      utils.Round2(revenue),
			Costs:        utils.Round2(costs),
			Margin:       utils.RatioPercent(revenue-costs, revenue),
			Transactions: len(rows),
		})
	}

	return &models.OperatingMargin{
		TotalRevenue:    utils.Round2(totalRevenue),
		TotalCosts:      utils.Round2(totalCosts),
		OperatingMargin: utils.RatioPercent(totalRevenue-totalCosts, totalRevenue),
		Monthly:         monthly,
	}, nil
}

// NetRevenue breaks gross revenue minus commission costs down by coupon
// type, with an overall summary. Types sort by net revenue descending.
func (uc *AnalyticsUC) NetRevenue(ctx context.Context, filter models.FilterSpec) (*models.NetRevenue, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	groups := groupBy(filtered, couponTypeOrDefault)

	byType := make([]models.NetRevenueByType, 0, len(groups))
	for typ, rows := range groups {
		gross := sumBy(rows, transactionValue)
		costs := sumBy(rows, transactionCommission)
		byType = append(byType, models.NetRevenueByType{
			Type:         typ,
			GrossRevenue: utils.Round2(gross),
			Costs:        utils.Round2(costs),
			NetRevenue:   utils.Round2(gross - costs),
			Transactions: len(rows),
			Margin:       utils.RatioPercent(gross-costs, gross),
		})
	}
	sort.Slice(byType, func(i, j int) bool {
		if byType[i].NetRevenue != byType[j].NetRevenue {
			return byType[i].NetRevenue > byType[j].NetRevenue
		}
		return byType[i].Type < byType[j].Type
	})

	totalGross := sumBy(filtered, transactionValue)
	totalCosts := sumBy(filtered, transactionCommission)
	totalNet := totalGross - totalCosts

	return &models.NetRevenue{
		Summary: models.NetRevenueSummary{
			TotalGrossRevenue: utils.Round2(totalGross),
			TotalCosts:        utils.Round2(totalCosts),
			TotalNetRevenue:   utils.Round2(totalNet),
			OverallMargin:     utils.RatioPercent(totalNet, totalGross),
		},
		ByType: byType,
	}, nil
}

// CouponPerformanceByType rolls transactions up per coupon type with value,
// commission and audience reach. Types sort by total value descending.
func (uc *AnalyticsUC) CouponPerformanceByType(ctx context.Context, filter models.FilterSpec) ([]models.CouponTypePerformance, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	groups := groupBy(filtered, couponTypeOrDefault)

	performance := make([]models.CouponTypePerformance, 0, len(groups))
	for typ, rows := range groups {
		totalValue := sumBy(rows, transactionValue)
		totalCommission := sumBy(rows, transactionCommission)
		performance = append(performance, models.CouponTypePerformance{
			Type:              typ,
			TotalValue:        utils.Round2(totalValue),
			TotalTransactions: len(rows),
			AvgTicket:         utils.SafeDivide(totalValue, float64(len(rows))),
			TotalCommission:   utils.Round2(totalCommission),
			CommissionRate:    utils.RatioPercent(totalCommission, totalValue),
			UniqueCustomers:   distinctCount(rows, transactionPhone),
			UniqueStores:      distinctCount(rows, transactionStore),
		})
	}
	sort.Slice(performance, func(i, j int) bool {
		if performance[i].TotalValue != performance[j].TotalValue {
			return performance[i].TotalValue > performance[j].TotalValue
		}
		return performance[i].Type < performance[j].Type
	})
	return performance, nil
}
