// Package stats buckets per-day records into the week/month/year summary
// series behind the trend chart.
package stats

import (
	"fmt"
	"strings"
	"time"

	"daytrack/internal/datekey"
	"daytrack/internal/models"
)

// Window selects how records are bucketed.
type Window string

const (
	Week  Window = "week"
	Month Window = "month"
	Year  Window = "year"
)

// ParseWindow converts user input to a Window.
func ParseWindow(s string) (Window, error) {
	switch Window(strings.ToLower(s)) {
	case Week:
		return Week, nil
	case Month:
		return Month, nil
	case Year:
		return Year, nil
	}
	return "", fmt.Errorf("invalid window %q (want week, month or year)", s)
}

// Series holds the three parallel sequences for one window. Labels may
// contain empty strings where a position carries no label (month view labels
// only every 5th day). A mood of 0 marks "no data", deliberately distinct
// from the implicit default of 3 shown when editing a day.
type Series struct {
	Labels   []string
	Activity []float64
	Moods    []float64
}

// Len returns the number of positions in the series.
func (s Series) Len() int {
	return len(s.Activity)
}

// Build computes the series for the window anchored at now. The result
// depends only on now and the record map; callers recompute after any
// mutation.
func Build(now time.Time, days map[string]models.DayRecord, w Window) Series {
	switch w {
	case Week:
		return buildDaily(days, datekey.Range(now.AddDate(0, 0, -6), 7), 1)
	case Month:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		count := first.AddDate(0, 1, -1).Day()
		return buildDaily(days, datekey.Range(first, count), 5)
	case Year:
		return buildYear(now, days)
	}
	return Series{}
}

// buildDaily produces one position per date key. Labels appear at every
// labelEvery'th index, empty elsewhere.
func buildDaily(days map[string]models.DayRecord, keys []string, labelEvery int) Series {
	s := Series{
		Labels:   make([]string, len(keys)),
		Activity: make([]float64, len(keys)),
		Moods:    make([]float64, len(keys)),
	}
	for i, key := range keys {
		if i%labelEvery == 0 {
			s.Labels[i] = datekey.DayOfMonth(key)
		}
		rec, ok := days[key]
		if !ok {
			continue
		}
		s.Activity[i] = float64(rec.ActivityCount())
		s.Moods[i] = rec.Mood
	}
	return s
}

// buildYear averages per-day values across each month of now's year, scanning
// store keys by their YYYY-MM prefix. Months with no records stay at 0.
func buildYear(now time.Time, days map[string]models.DayRecord) Series {
	s := Series{
		Labels:   make([]string, 12),
		Activity: make([]float64, 12),
		Moods:    make([]float64, 12),
	}
	for m := time.January; m <= time.December; m++ {
		i := int(m) - 1
		s.Labels[i] = fmt.Sprintf("%d", int(m))
		prefix := datekey.MonthPrefix(now.Year(), m)
		var activity, mood float64
		count := 0
		for key, rec := range days {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			activity += float64(rec.ActivityCount())
			mood += rec.Mood
			count++
		}
		if count > 0 {
			s.Activity[i] = activity / float64(count)
			s.Moods[i] = mood / float64(count)
		}
	}
	return s
}
