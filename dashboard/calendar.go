package dashboard

import (
	"time"

	"github.com/eringen/weddingnanny/content"
)

// Day is one calendar cell.
type Day struct {
	Date     string            `json:"date"` // YYYY-MM-DD
	Day      int               `json:"day"`
	Weekday  time.Weekday      `json:"weekday"`
	Bookings []content.Booking `json:"bookings"`
}

// Month is a calendar month laid out for a Sunday-first grid.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	// Offset is the number of empty cells before day 1.
	Offset int   `json:"offset"`
	Days   []Day `json:"days"`
}

// Calendar returns one Day per day of the given month, each holding the
// bookings dated that day in input order. Bookings with unparseable dates
// are ignored.
func Calendar(bookings []content.Booking, year int, month time.Month) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	n := first.AddDate(0, 1, -1).Day()

	days := make([]Day, n)
	for i := range days {
		d := first.AddDate(0, 0, i)
		days[i] = Day{Date: d.Format(dateLayout), Day: i + 1, Weekday: d.Weekday()}
	}
	for _, b := range bookings {
		t, err := time.Parse(dateLayout, b.Date)
		if err != nil || t.Year() != year || t.Month() != month {
			continue
		}
		days[t.Day()-1].Bookings = append(days[t.Day()-1].Bookings, b)
	}
	return days
}

// CalendarMonth wraps Calendar with the grid offset.
func CalendarMonth(bookings []content.Booking, year int, month time.Month) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{
		Year:   year,
		Month:  month,
		Offset: int(first.Weekday()),
		Days:   Calendar(bookings, year, month),
	}
}

// LatestMonth returns the month of the most recent parseable booking date, or
// the month of fallback when there is none.
func LatestMonth(bookings []content.Booking, fallback time.Time) (int, time.Month) {
	var latest time.Time
	for _, b := range bookings {
		t, err := time.Parse(dateLayout, b.Date)
		if err == nil && t.After(latest) {
			latest = t
		}
	}
	if latest.IsZero() {
		return fallback.Year(), fallback.Month()
	}
	return latest.Year(), latest.Month()
}
