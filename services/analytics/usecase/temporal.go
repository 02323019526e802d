package usecase

import (
	"context"
	"fmt"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// weekdays in the order the dashboard heatmap renders them
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var periodOrder = []string{"Manhã", "Tarde", "Noite", "Madrugada"}

// TimeDistribution counts filtered transactions per hour of the capture
// timestamp. All 24 buckets are always present, zero-filled, labelled
// "00:00" through "23:00". Records with an unparsable timestamp are skipped.
func (uc *AnalyticsUC) TimeDistribution(ctx context.Context, filter models.FilterSpec) ([]models.HourCount, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	var counts [24]int
	for _, t := range filtered {
		if hour, ok := utils.HourFromTimestamp(t.CapturedAt); ok {
			counts[hour]++
		}
	}

	result := make([]models.HourCount, 24)
	for hour := 0; hour < 24; hour++ {
		result[hour] = models.HourCount{
			Hour:         fmt.Sprintf("%02d:00", hour),
			Transactions: counts[hour],
		}
	}
	return result, nil
}

// PeakHours builds the 7x24 weekday-by-hour coupon matrix. Every weekday row
// carries all 24 hour cells even when empty. Records whose date or clock
// field fails to parse are skipped, not defaulted into a bucket.
func (uc *AnalyticsUC) PeakHours(ctx context.Context, filter models.FilterSpec) ([]models.WeekdayHours, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	matrix := make(map[string]*[24]int, len(weekdayOrder))
	for _, day := range weekdayOrder {
		matrix[day] = &[24]int{}
	}

	for _, t := range filtered {
		day, ok := utils.ParseDay(t.Date)
		if !ok {
			continue
		}
		hour, ok := utils.HourFromClock(t.Time)
		if !ok {
			continue
		}
		matrix[day.Weekday().String()][hour]++
	}

	result := make([]models.WeekdayHours, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		row := models.WeekdayHours{Day: day, Hours: make([]models.HourBucket, 24)}
		for hour := 0; hour < 24; hour++ {
			row.Hours[hour] = models.HourBucket{Hour: hour, Coupons: matrix[day][hour]}
		}
		result = append(result, row)
	}
	return result, nil
}

// PeriodDistribution buckets transactions into four day periods by the hour
// of the clock field. An unparsable clock field defaults to hour 0, which
// lands in the overnight bucket. Only periods with activity appear, in
// morning-to-overnight order.
func (uc *AnalyticsUC) PeriodDistribution(ctx context.Context, filter models.FilterSpec) ([]models.PeriodStats, error) {
	filtered := ApplyFilters(uc.datasetRepo.GetSnapshot().Transactions, filter)

	groups := groupBy(filtered, func(t models.Transaction) string {
		hour, ok := utils.HourFromClock(t.Time)
		if !ok {
			hour = 0
		}
		return periodForHour(hour)
	})

	result := make([]models.PeriodStats, 0, len(groups))
	for _, period := range periodOrder {
		rows, ok := groups[period]
		if !ok {
			continue
		}
		revenue := sumBy(rows, transactionValue)
		result = append(result, models.PeriodStats{
			Period:          period,
			Transactions:    len(rows),
			Revenue:         utils.Round2(revenue),
			AvgTicket:       utils.SafeDivide(revenue, float64(len(rows))),
			UniqueCustomers: distinctCount(rows, transactionPhone),
			Percentage:      utils.RatioPercent(float64(len(rows)), float64(len(filtered))),
		})
	}
	return result, nil
}

func periodForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "Manhã"
	case hour >= 12 && hour < 18:
		return "Tarde"
	case hour >= 18 && hour < 24:
		return "Noite"
	default:
		return "Madrugada"
	}
}
