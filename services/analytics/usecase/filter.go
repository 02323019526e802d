package usecase

import (
	"strings"
	"time"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// ApplyFilters shrinks the transaction set to the records matching every
// active filter. Pure: the input slice is never mutated and a new slice is
// always returned. An empty filter spec is the identity.
//
// The date-range predicate runs first; it is typically the most selective
// so later predicates see fewer records. AND composition makes the order
// irrelevant for correctness.
func ApplyFilters(records []models.Transaction, filter models.FilterSpec) []models.Transaction {
	predicates := buildPredicates(filter)

	out := make([]models.Transaction, 0, len(records))
	for _, t := range records {
		if matchesAll(t, predicates) {
			out = append(out, t)
		}
	}
	return out
}

type predicate func(models.Transaction) bool

func matchesAll(t models.Transaction, predicates []predicate) bool {
	for _, p := range predicates {
		if !p(t) {
			return false
		}
	}
	return true
}

func buildPredicates(filter models.FilterSpec) []predicate {
	var predicates []predicate

	if filter.StartDate != nil || filter.EndDate != nil {
		predicates = append(predicates, dateRangePredicate(filter.StartDate, filter.EndDate))
	}

	if filter.Category != "" {
		category := filter.Category
		predicates = append(predicates, func(t models.Transaction) bool {
			return t.StoreCategory != "" && utils.ContainsFold(t.StoreCategory, category)
		})
	}

	if filter.Neighborhood != "" {
		neighborhood := filter.Neighborhood
		predicates = append(predicates, func(t models.Transaction) bool {
			return t.Neighborhood != "" && utils.ContainsFold(t.Neighborhood, neighborhood)
		})
	}

	if len(filter.CouponTypes) > 0 {
		types := make(map[string]struct{}, len(filter.CouponTypes))
		for _, ct := range filter.CouponTypes {
			types[strings.ToLower(ct)] = struct{}{}
		}
		predicates = append(predicates, func(t models.Transaction) bool {
			if t.CouponType == "" {
				return false
			}
			_, ok := types[strings.ToLower(t.CouponType)]
			return ok
		})
	}

	if filter.Gender != "" {
		gender := filter.Gender
		predicates = append(predicates, func(t models.Transaction) bool {
			return t.Gender != "" && strings.EqualFold(t.Gender, gender)
		})
	}

	if filter.AgeMin != nil || filter.AgeMax != nil {
		predicates = append(predicates, agePredicate(filter.AgeMin, filter.AgeMax))
	}

	if filter.MinValue != nil {
		min := *filter.MinValue
		predicates = append(predicates, func(t models.Transaction) bool {
			return t.CouponValue >= min
		})
	}

	if filter.MaxValue != nil {
		max := *filter.MaxValue
		predicates = append(predicates, func(t models.Transaction) bool {
			return t.CouponValue <= max
		})
	}

	// filter.DeviceType is intentionally never applied; see models.FilterSpec

	return predicates
}

// dateRangePredicate is inclusive on both bounds. Records whose date fails
// to parse are excluded (fail-closed) rather than erroring the batch.
func dateRangePredicate(start, end *time.Time) predicate {
	return func(t models.Transaction) bool {
		d, ok := utils.ParseDay(t.Date)
		if !ok {
			return false
		}
		if start != nil && d.Before(*start) {
			return false
		}
		if end != nil && d.After(*end) {
			return false
		}
		return true
	}
}

// agePredicate excludes records with an unparsable age field. A missing max
// bound means "min and above".
func agePredicate(min, max *int) predicate {
	return func(t models.Transaction) bool {
		age, ok := utils.ParseInt(t.Age)
		if !ok {
			return false
		}
		if min != nil && age < *min {
			return false
		}
		if max != nil && age > *max {
			return false
		}
		return true
	}
}
