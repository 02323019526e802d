package usecase

import (
	"context"
	"sort"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// CouponValidationSummary rolls the filtered transactions up per coupon
// type. The datasets carry no validation workflow, so every captured coupon
// counts as validated and the pending column stays 0.
func (uc *AnalyticsUC) CouponValidationSummary(ctx context.Context, filter models.FilterSpec) ([]models.CouponValidationSummary, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	groups := groupBy(filtered, couponTypeOrDefault)

	summary := make([]models.CouponValidationSummary, 0, len(groups))
	for typ, rows := range groups {
		revenue := sumBy(rows, transactionValue)
		summary = append(summary, models.CouponValidationSummary{
			Type:             typ,
			TotalCoupons:     len(rows),
			ValidatedCoupons: len(rows),
			PendingCoupons:   0,
			ValidationRate:   utils.RatioPercent(float64(len(rows)), float64(len(rows))),
			TotalRevenue:     utils.Round2(revenue),
			TotalPayout:      utils.Round2(sumBy(rows, transactionCommission)),
			AvgCouponValue:   utils.SafeDivide(revenue, float64(len(rows))),
		})
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].TotalRevenue != summary[j].TotalRevenue {
			return summary[i].TotalRevenue > summary[j].TotalRevenue
		}
		return summary[i].Type < summary[j].Type
	})
	return summary, nil
}

// PayoutTracking groups commission payouts by month and store. Every row is
// marked paid; there is no payout workflow in the source data. Rows sort by
// payout descending.
func (uc *AnalyticsUC) PayoutTracking(ctx context.Context, filter models.FilterSpec) ([]models.PayoutRecord, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	type key struct {
		month string
		store string
	}
	groups := make(map[key][]models.Transaction)
	for _, t := range filtered {
		k := key{month: monthOf(t.Date), store: storeOrDefault(t)}
		groups[k] = append(groups[k], t)
	}

	records := make([]models.PayoutRecord, 0, len(groups))
	for k, rows := range groups {
		payout := sumBy(rows, transactionCommission)
		revenue := sumBy(rows, transactionValue)
		records = append(records, models.PayoutRecord{
			Month:                   k.month,
			Store:                   k.store,
			TotalPayout:             utils.Round2(payout),
			Transactions:            len(rows),
			Revenue:                 utils.Round2(revenue),
			PayoutRate:              utils.RatioPercent(payout, revenue),
			AvgPayoutPerTransaction: utils.SafeDivide(payout, float64(len(rows))),
			Status:                  "Pago",
		})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].TotalPayout != records[j].TotalPayout {
			return records[i].TotalPayout > records[j].TotalPayout
		}
		if records[i].Month != records[j].Month {
			return records[i].Month < records[j].Month
		}
		return records[i].Store < records[j].Store
	})
	return records, nil
}
