package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Per-record parsing policies for the CSV datasets. The aggregation rules
// distinguish two failure modes: "default" (the record still counts, with a
// zero value) and "exclude" (the record is skipped for that computation).
// Each policy is a named function so the behavior is testable instead of an
// implicit side effect of error handling.

var dayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseFloatOrZero parses a numeric field, defaulting to 0 when the value is
// missing or malformed. Non-finite values also default to 0.
func ParseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseIntOrZero parses an integer field, defaulting to 0 when malformed
func ParseIntOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// ParseInt parses an integer field, reporting whether it was parseable.
// Callers use the failure to exclude the record.
func ParseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseCoordinate parses a latitude/longitude field, reporting failure for
// missing, malformed or non-finite values so the record can be dropped.
func ParseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseDay parses a calendar-day field. It accepts a plain date or a full
// timestamp; callers exclude the record on failure.
func ParseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HourFromClock extracts the hour from a "15:04" or "15:04:05" field
func HourFromClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	idx := strings.Index(s, ":")
	if idx <= 0 {
		return 0, false
	}
	hour, err := strconv.Atoi(s[:idx])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// HourFromTimestamp extracts the hour of day from a full timestamp field
func HourFromTimestamp(s string) (int, bool) {
	t, ok := ParseDay(s)
	if !ok {
		return 0, false
	}
	// A bare date parses to midnight, which is a valid hour 0
	return t.Hour(), true
}

// Round2 rounds a currency amount to 2 decimal places, half away from zero
// on cents (multiply by 100, round, divide by 100)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RatioPercent returns part/whole as a percentage rounded to 2 decimals,
// defined as 0 when whole is 0
func RatioPercent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(part/whole*10000) / 100
}

// WholePercent returns part/whole as a whole-number percentage. The coupon
// distribution intentionally rounds to whole percents, coarser than the
// 2-decimal currency rule.
func WholePercent(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}

// SafeDivide returns a/b rounded to 2 decimals, 0 when b is 0. Averages are
// never NaN or Inf.
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return Round2(a / b)
}
