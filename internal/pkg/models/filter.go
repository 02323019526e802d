package models

import (
	"time"
)

// FilterSpec is the typed form of the query-string filter parameters. Every
// field is optional and independently composable; active filters combine with
// logical AND. Pointer fields distinguish "absent" from a zero value.
type FilterSpec struct {
	StartDate    *time.Time
	EndDate      *time.Time
	Category     string   // case-insensitive substring match
	Neighborhood string   // case-insensitive substring match
	CouponTypes  []string // lowercased membership set
	Gender       string   // lowercased exact match; empty means no filter
	AgeMin       *int
	AgeMax       *int
	MinValue     *float64
	MaxValue     *float64

	// DeviceType is accepted on the wire but intentionally never applied to
	// the predicate pipeline. The upstream dashboard sends it; the datasets
	// carry no device field to match it against.
	DeviceType string
}

// IsEmpty reports whether no filter is active
func (f FilterSpec) IsEmpty() bool {
	return f.StartDate == nil && f.EndDate == nil &&
		f.Category == "" && f.Neighborhood == "" &&
		len(f.CouponTypes) == 0 && f.Gender == "" &&
		f.AgeMin == nil && f.AgeMax == nil &&
		f.MinValue == nil && f.MaxValue == nil
}
