package content

// Clone returns a deep copy of p.
func (p CityPage) Clone() CityPage {
	out := p
	out.Layout = cloneStrings(p.Layout)
	if p.Testimonials != nil {
		out.Testimonials = append([]Testimonial(nil), p.Testimonials...)
	}
	if p.FAQs != nil {
		out.FAQs = append([]FAQ(nil), p.FAQs...)
	}
	if p.LocalInsights != nil {
		li := *p.LocalInsights
		li.Content = cloneStrings(p.LocalInsights.Content)
		out.LocalInsights = &li
	}
	return out
}

// Clone returns a deep copy of g.
func (g GlobalConfig) Clone() GlobalConfig {
	out := g
	if g.Bookings != nil {
		out.Bookings = append([]Booking(nil), g.Bookings...)
	}
	return out
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{Cities: cloneCities(s.Cities), Global: s.Global.Clone()}
}

// Clone returns a deep copy of b.
func (b BackupEntry) Clone() BackupEntry {
	out := b
	out.Data = b.Data.Clone()
	return out
}

// Clone returns a deep copy of st.
func (st State) Clone() State {
	out := State{
		Cities: cloneCities(st.Cities),
		Global: st.Global.Clone(),
		Logs:   cloneLogs(st.Logs),
	}
	if st.Backups != nil {
		out.Backups = make([]BackupEntry, len(st.Backups))
		for i, b := range st.Backups {
			out.Backups[i] = b.Clone()
		}
	}
	return out
}

func cloneCities(m map[string]CityPage) map[string]CityPage {
	if m == nil {
		return nil
	}
	out := make(map[string]CityPage, len(m))
	for id, p := range m {
		out[id] = p.Clone()
	}
	return out
}

func cloneLogs(logs []LogEntry) []LogEntry {
	if logs == nil {
		return nil
	}
	return append([]LogEntry(nil), logs...)
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
