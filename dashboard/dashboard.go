// Package dashboard aggregates booking records for the admin console: totals,
// per-city and per-status breakdowns, and a month calendar.
package dashboard

import (
	"sort"

	"github.com/eringen/weddingnanny/content"
)

// dateLayout is the format of content.Booking.Date.
const dateLayout = "2006-01-02"

// Stats holds aggregated booking data.
type Stats struct {
	TotalBookings int          `json:"totalBookings"`
	TotalRevenue  int64        `json:"totalRevenue"`
	Cities        []CityStat   `json:"cities"`
	Statuses      []StatusStat `json:"statuses"`
	// MaxCityCount is the largest per-city count, never below 1, so bar
	// widths can be computed as Count/MaxCityCount.
	MaxCityCount int `json:"maxCityCount"`
}

// CityStat is the booking count and revenue for one city.
type CityStat struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Revenue int64  `json:"revenue"`
}

// Percent returns the city's share of max as a whole percentage.
func (c CityStat) Percent(max int) int {
	if max <= 0 {
		return 0
	}
	return c.Count * 100 / max
}

// StatusStat is the booking count for one status.
type StatusStat struct {
	Status content.BookingStatus `json:"status"`
	Count  int                   `json:"count"`
}

// Summarize aggregates bookings. Cities are ordered by count descending then
// name; statuses follow confirmed, pending, completed, then any others by name.
func Summarize(bookings []content.Booking) Stats {
	st := Stats{TotalBookings: len(bookings), MaxCityCount: 1}

	cityIdx := map[string]int{}
	statusCounts := map[content.BookingStatus]int{}
	for _, b := range bookings {
		st.TotalRevenue += b.Revenue
		i, ok := cityIdx[b.City]
		if !ok {
			i = len(st.Cities)
			cityIdx[b.City] = i
			st.Cities = append(st.Cities, CityStat{Name: b.City})
		}
		st.Cities[i].Count++
		st.Cities[i].Revenue += b.Revenue
		statusCounts[b.Status]++
	}

	sort.Slice(st.Cities, func(i, j int) bool {
		if st.Cities[i].Count != st.Cities[j].Count {
			return st.Cities[i].Count > st.Cities[j].Count
		}
		return st.Cities[i].Name < st.Cities[j].Name
	})
	for _, c := range st.Cities {
		if c.Count > st.MaxCityCount {
			st.MaxCityCount = c.Count
		}
	}

	for s, n := range statusCounts {
		st.Statuses = append(st.Statuses, StatusStat{Status: s, Count: n})
	}
	sort.Slice(st.Statuses, func(i, j int) bool {
		ri, rj := statusRank(st.Statuses[i].Status), statusRank(st.Statuses[j].Status)
		if ri != rj {
			return ri < rj
		}
		return st.Statuses[i].Status < st.Statuses[j].Status
	})
	return st
}

func statusRank(s content.BookingStatus) int {
	switch s {
	case content.StatusConfirmed:
		return 0
	case content.StatusPending:
		return 1
	case content.StatusCompleted:
		return 2
	}
	return 3
}
