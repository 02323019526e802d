package usecase

import (
	"sort"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// Shared aggregation primitives. Every operation is the same pipeline:
// filter, group by a key extractor, reduce each group, then shape
// (sort/round/percent) the result.

// groupBy collects records into buckets keyed by the extractor. Callers
// sort the result themselves; map iteration order is never exposed.
func groupBy[T any](records []T, key func(T) string) map[string][]T {
	groups := make(map[string][]T)
	for _, r := range records {
		k := key(r)
		groups[k] = append(groups[k], r)
	}
	return groups
}

// sumBy totals a numeric field over a record set
func sumBy[T any](records []T, field func(T) float64) float64 {
	var total float64
	for _, r := range records {
		total += field(r)
	}
	return total
}

// distinctCount counts the distinct non-empty values of a field
func distinctCount[T any](records []T, field func(T) string) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		if v := field(r); v != "" {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

// sortDayKeysAsc orders group keys by parsed calendar date ascending.
// Unparsable keys sort after parseable ones, by raw string.
func sortDayKeysAsc(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		di, oki := utils.ParseDay(keys[i])
		dj, okj := utils.ParseDay(keys[j])
		if oki && okj {
			return di.Before(dj)
		}
		if oki != okj {
			return oki
		}
		return keys[i] < keys[j]
	})
}

func transactionValue(t models.Transaction) float64 {
	return t.CouponValue
}

func transactionCommission(t models.Transaction) float64 {
	return t.Commission
}

func transactionPhone(t models.Transaction) string {
	return t.Phone
}

func transactionStore(t models.Transaction) string {
	return t.StoreName
}
