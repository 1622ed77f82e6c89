package stats

import (
	"testing"
	"time"

	"daytrack/internal/datekey"
	"daytrack/internal/models"
)

func dayWith(mood float64, cats ...models.Category) models.DayRecord {
	rec := models.NewDayRecord()
	rec.Mood = mood
	for _, c := range cats {
		rec.Categories[c] = true
	}
	return rec
}

func TestParseWindow(t *testing.T) {
	for _, s := range []string{"week", "Month", "YEAR"} {
		if _, err := ParseWindow(s); err != nil {
			t.Errorf("expected %q to parse, got %v", s, err)
		}
	}
	if _, err := ParseWindow("decade"); err == nil {
		t.Error("expected error for unknown window")
	}
}

func TestBuildWeek(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.Local)
	today := datekey.Format(now)
	yesterday := datekey.Format(now.AddDate(0, 0, -1))

	days := map[string]models.DayRecord{
		today:     dayWith(4.5, models.CategoryGoals, models.CategorySport, models.CategoryWork),
		yesterday: dayWith(2.0, models.CategoryFamily),
	}

	s := Build(now, days, Week)
	if s.Len() != 7 {
		t.Fatalf("expected 7 positions, got %d", s.Len())
	}

	// The window ends on today, so the two tracked days land at the tail.
	if s.Activity[6] != 3 || s.Moods[6] != 4.5 {
		t.Errorf("today: expected (3, 4.5), got (%v, %v)", s.Activity[6], s.Moods[6])
	}
	if s.Activity[5] != 1 || s.Moods[5] != 2.0 {
		t.Errorf("yesterday: expected (1, 2.0), got (%v, %v)", s.Activity[5], s.Moods[5])
	}

	// Untracked days sit at zero, not at the editing default of 3.
	for i := 0; i < 5; i++ {
		if s.Activity[i] != 0 || s.Moods[i] != 0 {
			t.Errorf("position %d: expected (0, 0), got (%v, %v)", i, s.Activity[i], s.Moods[i])
		}
	}

	// Week view labels every day with its zero-padded day of month.
	if s.Labels[6] != "30" || s.Labels[0] != "24" {
		t.Errorf("unexpected labels: %v", s.Labels)
	}
}

func TestBuildMonth(t *testing.T) {
	now := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.Local)
	days := map[string]models.DayRecord{
		"2026-02-01": dayWith(5, models.CategoryGoals),
		"2026-02-28": dayWith(1, models.CategoryWork, models.CategoryFinance),
	}

	s := Build(now, days, Month)
	if s.Len() != 28 {
		t.Fatalf("expected 28 positions for February 2026, got %d", s.Len())
	}

	if s.Activity[0] != 1 || s.Moods[0] != 5 {
		t.Errorf("Feb 1: expected (1, 5), got (%v, %v)", s.Activity[0], s.Moods[0])
	}
	if s.Activity[27] != 2 || s.Moods[27] != 1 {
		t.Errorf("Feb 28: expected (2, 1), got (%v, %v)", s.Activity[27], s.Moods[27])
	}

	// Month view labels every 5th position and leaves the rest blank.
	if s.Labels[0] != "01" || s.Labels[5] != "06" || s.Labels[25] != "26" {
		t.Errorf("unexpected month labels: %v", s.Labels)
	}
	for _, i := range []int{1, 4, 6, 27} {
		if s.Labels[i] != "" {
			t.Errorf("position %d: expected blank label, got %q", i, s.Labels[i])
		}
	}
}

func TestBuildYear(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.Local)
	days := map[string]models.DayRecord{
		"2026-03-01": dayWith(3, models.CategoryGoals, models.CategorySport),
		"2026-03-20": dayWith(5, models.CategoryGoals, models.CategorySport, models.CategoryWork, models.CategoryFamily),
		// A prior year's record must not leak into this year's buckets.
		"2025-03-05": dayWith(1, models.CategoryFinance),
	}

	s := Build(now, days, Year)
	if s.Len() != 12 {
		t.Fatalf("expected 12 positions, got %d", s.Len())
	}

	// March averages the two tracked days.
	march := int(time.March) - 1
	if s.Activity[march] != 3 || s.Moods[march] != 4 {
		t.Errorf("March: expected (3, 4), got (%v, %v)", s.Activity[march], s.Moods[march])
	}

	// Months with no records stay at zero.
	april := int(time.April) - 1
	if s.Activity[april] != 0 || s.Moods[april] != 0 {
		t.Errorf("April: expected (0, 0), got (%v, %v)", s.Activity[april], s.Moods[april])
	}

	if s.Labels[0] != "1" || s.Labels[11] != "12" {
		t.Errorf("unexpected year labels: %v", s.Labels)
	}
}

func TestBuildUnknownWindow(t *testing.T) {
	s := Build(time.Now(), nil, Window("decade"))
	if s.Len() != 0 {
		t.Errorf("expected empty series for unknown window, got %d positions", s.Len())
	}
}
