package engine

import "forestlog/internal/storage"

// The log is append-at-head only: the most recent entry is always
// logs[0], and nothing ever edits or removes an entry.

func insertAtHead(p *storage.Profile, e storage.LogEntry) {
	p.Logs = append([]storage.LogEntry{e}, p.Logs...)
}

func entriesOn(logs []storage.LogEntry, d storage.Date) []storage.LogEntry {
	var out []storage.LogEntry
	for _, e := range logs {
		if e.Date.Equal(d) {
			out = append(out, e)
		}
	}
	return out
}

// nextEntryID returns max existing id + 1, starting at 1. A monotonic
// counter keeps ids unique by construction across any history length.
func nextEntryID(logs []storage.LogEntry) int64 {
	var max int64
	for _, e := range logs {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}
