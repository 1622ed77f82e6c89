package datekey

import (
	"sort"
	"testing"
	"time"
)

func TestFormatAndParseRoundTrip(t *testing.T) {
	orig := time.Date(2026, time.August, 5, 14, 30, 0, 0, time.Local)

	key := Format(orig)
	if key != "2026-08-05" {
		t.Errorf("expected key 2026-08-05, got %s", key)
	}

	parsed, err := Parse(key)
	if err != nil {
		t.Fatalf("failed to parse key: %v", err)
	}
	y, m, d := parsed.Date()
	if y != 2026 || m != time.August || d != 5 {
		t.Errorf("calendar fields did not round-trip: got %04d-%02d-%02d", y, int(m), d)
	}
}

func TestParseRejectsMalformedKeys(t *testing.T) {
	bad := []string{"", "2026-8-5", "08/05/2026", "2026-13-01", "not a date"}
	for _, key := range bad {
		if _, err := Parse(key); err == nil {
			t.Errorf("expected error parsing %q, got nil", key)
		}
	}
}

func TestKeysSortInCalendarOrder(t *testing.T) {
	start := time.Date(2026, time.December, 28, 0, 0, 0, 0, time.Local)

	// Spans a year boundary, where lexicographic order would break
	// for any non-zero-padded layout.
	keys := Range(start, 7)
	if len(keys) != 7 {
		t.Fatalf("expected 7 keys, got %d", len(keys))
	}
	if !sort.StringsAreSorted(keys) {
		t.Errorf("keys not in lexicographic order: %v", keys)
	}
	if keys[0] != "2026-12-28" || keys[6] != "2027-01-03" {
		t.Errorf("unexpected range endpoints: %s .. %s", keys[0], keys[6])
	}
}

func TestMonthPrefix(t *testing.T) {
	prefix := MonthPrefix(2026, time.March)
	if prefix != "2026-03" {
		t.Errorf("expected 2026-03, got %s", prefix)
	}

	key := Format(time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local))
	if key[:len(prefix)] != prefix {
		t.Errorf("key %s does not share prefix %s", key, prefix)
	}
}

func TestDayOfMonth(t *testing.T) {
	if got := DayOfMonth("2026-08-05"); got != "05" {
		t.Errorf("expected 05, got %s", got)
	}
	if got := DayOfMonth("2026-12-31"); got != "31" {
		t.Errorf("expected 31, got %s", got)
	}

	// Too-short input comes back unchanged rather than panicking.
	if got := DayOfMonth("2026"); got != "2026" {
		t.Errorf("expected short input unchanged, got %s", got)
	}
}
