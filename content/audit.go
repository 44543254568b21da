package content

// MaxLogEntries caps the change log; older entries are dropped on insert.
const MaxLogEntries = 50

// LogAuthor is the author label stamped on every change log entry.
const LogAuthor = "Administrator"

// appendLog returns a new log with e first, truncated to MaxLogEntries.
// The input slice is not modified.
func appendLog(logs []LogEntry, e LogEntry) []LogEntry {
	n := len(logs) + 1
	if n > MaxLogEntries {
		n = MaxLogEntries
	}
	out := make([]LogEntry, 0, n)
	out = append(out, e)
	for _, l := range logs {
		if len(out) == n {
			break
		}
		out = append(out, l)
	}
	return out
}

// newLogEntry builds an entry for description using the store's clock and ids.
func (s *Store) newLogEntry(description string) LogEntry {
	return LogEntry{
		ID:          s.newID(),
		Timestamp:   s.now().UnixMilli(),
		Description: description,
		Author:      LogAuthor,
	}
}
