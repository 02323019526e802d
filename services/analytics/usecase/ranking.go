package usecase

import (
	"context"
	"sort"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

const topCategoriesLimit = 10

// TopCategories ranks store categories by coupon value, highest first,
// capped at the top ten.
func (uc *AnalyticsUC) TopCategories(ctx context.Context, filter models.FilterSpec) ([]models.CategorySummary, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	groups := groupBy(filtered, categoryOrDefault)

	result := make([]models.CategorySummary, 0, len(groups))
	for category, rows := range groups {
		result = append(result, models.CategorySummary{
			Category: category,
			Count:    len(rows),
			Value:    utils.Round2(sumBy(rows, transactionValue)),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Value != result[j].Value {
			return result[i].Value > result[j].Value
		}
		return result[i].Category < result[j].Category
	})
	if len(result) > topCategoriesLimit {
		result = result[:topCategoriesLimit]
	}
	return result, nil
}

// StorePerformanceRanking ranks stores by commission revenue. Ranks are
// reassigned after sorting so they are always contiguous from 1.
func (uc *AnalyticsUC) StorePerformanceRanking(ctx context.Context, filter models.FilterSpec) ([]models.StoreRanking, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	groups := groupBy(filtered, storeOrDefault)

	ranking := make([]models.StoreRanking, 0, len(groups))
	for store, rows := range groups {
		ranking = append(ranking, models.StoreRanking{
			Store:     store,
			Category:  categoryOrDefault(rows[0]),
			Revenue:   utils.Round2(sumBy(rows, transactionCommission)),
			Count:     len(rows),
			AvgTicket: utils.SafeDivide(sumBy(rows, transactionValue), float64(len(rows))),
		})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Revenue != ranking[j].Revenue {
			return ranking[i].Revenue > ranking[j].Revenue
		}
		return ranking[i].Store < ranking[j].Store
	})
	for i := range ranking {
		ranking[i].Rank = i + 1
	}
	return ranking, nil
}

// RevenueByRegion totals coupon value per neighborhood, highest first.
func (uc *AnalyticsUC) RevenueByRegion(ctx context.Context, filter models.FilterSpec) ([]models.RegionRevenue, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	groups := groupBy(filtered, func(t models.Transaction) string {
		return utils.OrDefault(t.Neighborhood, "Não informado")
	})

	result := make([]models.RegionRevenue, 0, len(groups))
	for region, rows := range groups {
		result = append(result, models.RegionRevenue{
			Region:  region,
			Revenue: utils.Round2(sumBy(rows, transactionValue)),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].Region < result[j].Region
	})
	return result, nil
}

// DetailedCategoryAnalysis extends the category ranking with per-category
// participation shares against the filtered totals.
func (uc *AnalyticsUC) DetailedCategoryAnalysis(ctx context.Context, filter models.FilterSpec) ([]models.CategoryAnalysis, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	totalRevenue := sumBy(filtered, transactionValue)
	totalTransactions := len(filtered)

	groups := groupBy(filtered, categoryOrDefault)

	analysis := make([]models.CategoryAnalysis, 0, len(groups))
	for category, rows := range groups {
		revenue := sumBy(rows, transactionValue)
		analysis = append(analysis, models.CategoryAnalysis{
			Category:                 category,
			Revenue:                  utils.Round2(revenue),
			Transactions:             len(rows),
			AvgTicket:                utils.SafeDivide(revenue, float64(len(rows))),
			UniqueStores:             distinctCount(rows, transactionStore),
			UniqueCustomers:          distinctCount(rows, transactionPhone),
			Commission:               utils.Round2(sumBy(rows, transactionCommission)),
			RevenueParticipation:     utils.RatioPercent(revenue, totalRevenue),
			TransactionParticipation: utils.RatioPercent(float64(len(rows)), float64(totalTransactions)),
		})
	}
	sort.Slice(analysis, func(i, j int) bool {
		if analysis[i].Revenue != analysis[j].Revenue {
			return analysis[i].Revenue > analysis[j].Revenue
		}
		return analysis[i].Category < analysis[j].Category
	})
	return analysis, nil
}

func categoryOrDefault(t models.Transaction) string {
	return utils.OrDefault(t.StoreCategory, "Não informado")
}

func storeOrDefault(t models.Transaction) string {
	return utils.OrDefault(t.StoreName, "Não informado")
}
