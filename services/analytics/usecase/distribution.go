package usecase

import (
	"context"
	"sort"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// CouponDistribution shares the filtered transactions across coupon types.
// The percent column is a whole number against the filtered total; the sum
// of all shares can land on 99 or 101 after rounding.
func (uc *AnalyticsUC) CouponDistribution(ctx context.Context, filter models.FilterSpec) ([]models.CouponTypeShare, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	groups := groupBy(filtered, couponTypeOrDefault)

	shares := make([]models.CouponTypeShare, 0, len(groups))
	for typ, rows := range groups {
		shares = append(shares, models.CouponTypeShare{
			Type:    typ,
			Count:   len(rows),
			Value:   utils.Round2(sumBy(rows, transactionValue)),
			Percent: utils.WholePercent(float64(len(rows)), float64(len(filtered))),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Type < shares[j].Type
	})
	return shares, nil
}
