// Package datekey canonicalizes calendar dates into the sortable YYYY-MM-DD
// keys that index the record store.
package datekey

import (
	"fmt"
	"time"
)

// Layout is the canonical date key layout.
const Layout = "2006-01-02"

// Format returns the canonical key for t's calendar day, using t's own
// location. Keys sort lexicographically in calendar order.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the key for the current local day.
func Today() string {
	return Format(time.Now())
}

// Parse converts a key back to a time at local midnight. The calendar fields
// round-trip through Format.
func Parse(key string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// Range returns the keys for count consecutive days starting at start.
func Range(start time.Time, count int) []string {
	keys := make([]string, 0, count)
	for i := 0; i < count; i++ {
		keys = append(keys, Format(start.AddDate(0, 0, i)))
	}
	return keys
}

// MonthPrefix returns the YYYY-MM prefix shared by every key in the given
// month, used for the year-view prefix scan.
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// DayOfMonth returns the two-digit day segment of a key, e.g. "05" for
// "2026-08-05". It is the chart label for week and month views.
func DayOfMonth(key string) string {
	if len(key) < len(Layout) {
		return key
	}
	return key[8:10]
}
