package util

import (
	"fmt"
	"time"
)

// MonthRange returns the half-open date range [start, end) covering every
// calendar day of the given YYYY-MM month. AddDate handles month length and
// leap years.
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return start, start.AddDate(0, 1, 0), nil
}
