package engine

import "forestlog/internal/storage"

// DayPoints is one bucket of the weekly momentum series.
type DayPoints struct {
	Date   storage.Date
	Points int
}

// WeeklySeries sums points per calendar day over the trailing 7-day
// window (today-6 … today), in chronological order. The result always
// has exactly 7 buckets; days with no entries contribute 0.
func WeeklySeries(logs []storage.LogEntry, today storage.Date) []DayPoints {
	series := make([]DayPoints, 7)
	for i := range series {
		series[i].Date = today.AddDays(i - 6)
	}
	for _, e := range logs {
		offset := 6 + e.Date.DaysSince(today)
		if offset < 0 || offset > 6 {
			continue
		}
		series[offset].Points += e.Points
	}
	return series
}
