package models

// Category identifies one of the fixed activity categories. The values are
// persisted in the store and in backup files, so they are stable keys; only
// the display labels may be localized.
type Category string

const (
	CategoryGoals   Category = "goals"
	CategorySport   Category = "sport"
	CategoryWork    Category = "work"
	CategoryFinance Category = "finance"
	CategoryFamily  Category = "family"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryGoals,
	CategorySport,
	CategoryWork,
	CategoryFinance,
	CategoryFamily,
}

// Labels maps stable category keys to display labels.
var Labels = map[Category]string{
	CategoryGoals:   "Goals",
	CategorySport:   "Sport",
	CategoryWork:    "Work",
	CategoryFinance: "Finance",
	CategoryFamily:  "Family",
}

// IsValidCategory reports whether id is one of the fixed category keys.
func IsValidCategory(id string) bool {
	for _, c := range Categories {
		if string(c) == id {
			return true
		}
	}
	return false
}

const (
	// MoodMin and MoodMax bound the mood score domain.
	MoodMin = 1.0
	MoodMax = 5.0
	// MoodDefault is the mood shown for a day with no record.
	MoodDefault = 3.0
)

// DayRecord holds one calendar day's state, keyed in the store by its
// YYYY-MM-DD date key. A record is created lazily on first mutation and is
// never deleted.
type DayRecord struct {
	Categories map[Category]bool `json:"categories"`
	Mood       float64           `json:"mood"`
	Note       string            `json:"note"`
}

// NewDayRecord returns the implicit default record for a day with no data.
func NewDayRecord() DayRecord {
	return DayRecord{
		Categories: map[Category]bool{},
		Mood:       MoodDefault,
		Note:       "",
	}
}

// Clone returns a deep copy. Store mutations go through cloned records so
// previously returned snapshots are never mutated in place.
func (r DayRecord) Clone() DayRecord {
	out := r
	out.Categories = make(map[Category]bool, len(r.Categories))
	for k, v := range r.Categories {
		out.Categories[k] = v
	}
	return out
}

// ActivityCount is the number of category flags set for the day. Absent
// entries count as false.
func (r DayRecord) ActivityCount() int {
	n := 0
	for _, on := range r.Categories {
		if on {
			n++
		}
	}
	return n
}
