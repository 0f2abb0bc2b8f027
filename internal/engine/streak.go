package engine

import "forestlog/internal/storage"

// ApplyLapse runs the once-per-session streak continuity check.
// A gap of more than one whole day since the last post resets the
// streak; posting yesterday or earlier today leaves it intact.
// Reports whether the streak was reset.
func ApplyLapse(p *storage.Profile, today storage.Date) bool {
	if p.LastPostDate == nil {
		return false
	}
	if today.DaysSince(*p.LastPostDate) > 1 {
		if p.Streak == 0 {
			return false
		}
		p.Streak = 0
		return true
	}
	return false
}
