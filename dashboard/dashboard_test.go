package dashboard

import (
	"testing"
	"time"

	"github.com/eringen/weddingnanny/content"
)

func TestSummarizeDefaults(t *testing.T) {
	st := Summarize(content.DefaultGlobal().Bookings)

	if st.TotalBookings != 5 {
		t.Errorf("TotalBookings = %d, want 5", st.TotalBookings)
	}
	if st.TotalRevenue != 88000 {
		t.Errorf("TotalRevenue = %d, want 88000", st.TotalRevenue)
	}
	if st.MaxCityCount != 2 {
		t.Errorf("MaxCityCount = %d, want 2", st.MaxCityCount)
	}

	want := []CityStat{
		{Name: "Delhi-NCR", Count: 2, Revenue: 33000},
		{Name: "Ballia", Count: 1, Revenue: 12000},
		{Name: "Hyderabad", Count: 1, Revenue: 8000},
		{Name: "Mumbai", Count: 1, Revenue: 35000},
	}
	if len(st.Cities) != len(want) {
		t.Fatalf("cities = %+v", st.Cities)
	}
	for i := range want {
		if st.Cities[i] != want[i] {
			t.Errorf("cities[%d] = %+v, want %+v", i, st.Cities[i], want[i])
		}
	}
	if len(st.Statuses) != 1 || st.Statuses[0].Count != 5 {
		t.Errorf("statuses = %+v", st.Statuses)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	st := Summarize(nil)
	if st.TotalBookings != 0 || st.TotalRevenue != 0 || len(st.Cities) != 0 {
		t.Errorf("unexpected stats for no bookings: %+v", st)
	}
	if st.MaxCityCount != 1 {
		t.Errorf("MaxCityCount = %d, want 1", st.MaxCityCount)
	}
}

func TestSummarizeStatusOrder(t *testing.T) {
	bookings := []content.Booking{
		{City: "A", Status: content.StatusCompleted},
		{City: "A", Status: "cancelled"},
		{City: "B", Status: content.StatusPending},
		{City: "B", Status: content.StatusConfirmed},
		{City: "B", Status: content.StatusPending},
	}
	st := Summarize(bookings)
	want := []content.BookingStatus{content.StatusConfirmed, content.StatusPending, content.StatusCompleted, "cancelled"}
	if len(st.Statuses) != len(want) {
		t.Fatalf("statuses = %+v", st.Statuses)
	}
	for i, s := range want {
		if st.Statuses[i].Status != s {
			t.Errorf("statuses[%d] = %s, want %s", i, st.Statuses[i].Status, s)
		}
	}
	if st.Statuses[1].Count != 2 {
		t.Errorf("pending count = %d, want 2", st.Statuses[1].Count)
	}
}

func TestCityStatPercent(t *testing.T) {
	tests := []struct {
		count, max, want int
	}{
		{2, 2, 100},
		{1, 2, 50},
		{1, 3, 33},
		{0, 1, 0},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := (CityStat{Count: tt.count}).Percent(tt.max); got != tt.want {
			t.Errorf("Percent(%d/%d) = %d, want %d", tt.count, tt.max, got, tt.want)
		}
	}
}

func TestCalendar(t *testing.T) {
	bookings := content.DefaultGlobal().Bookings
	bookings = append(bookings, content.Booking{ID: "x", Date: "not-a-date"}, content.Booking{ID: "y", Date: "2025-05-20"})

	days := Calendar(bookings, 2025, time.May)
	if len(days) != 31 {
		t.Fatalf("len = %d, want 31", len(days))
	}
	if days[0].Date != "2025-05-01" || days[0].Weekday != time.Thursday {
		t.Errorf("first day = %+v", days[0])
	}
	if got := len(days[14].Bookings); got != 1 || days[14].Bookings[0].ClientName != "Amit & Ritu" {
		t.Errorf("May 15 bookings = %+v", days[14].Bookings)
	}
	if got := len(days[19].Bookings); got != 2 || days[19].Bookings[1].ID != "y" {
		t.Errorf("May 20 bookings = %+v", days[19].Bookings)
	}
	total := 0
	for _, d := range days {
		total += len(d.Bookings)
	}
	if total != 3 {
		t.Errorf("bookings placed = %d, want 3", total)
	}
}

func TestCalendarMonthLengths(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		if got := len(Calendar(nil, tt.year, tt.month)); got != tt.days {
			t.Errorf("%d-%02d: %d days, want %d", tt.year, tt.month, got, tt.days)
		}
	}
}

func TestCalendarMonthOffset(t *testing.T) {
	m := CalendarMonth(nil, 2025, time.June)
	if m.Offset != int(time.Sunday) {
		t.Errorf("June 2025 offset = %d, want 0", m.Offset)
	}
	if m = CalendarMonth(nil, 2025, time.May); m.Offset != int(time.Thursday) {
		t.Errorf("May 2025 offset = %d, want 4", m.Offset)
	}
}

func TestLatestMonth(t *testing.T) {
	fallback := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	y, m := LatestMonth(content.DefaultGlobal().Bookings, fallback)
	if y != 2025 || m != time.August {
		t.Errorf("LatestMonth = %d-%02d, want 2025-08", y, m)
	}
	y, m = LatestMonth(nil, fallback)
	if y != 2026 || m != time.March {
		t.Errorf("fallback = %d-%02d, want 2026-03", y, m)
	}
}
