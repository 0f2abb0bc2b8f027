package storage

import (
	"fmt"
	"time"
)

// Profile is the whole persisted state. Exactly one per installation.
type Profile struct {
	// TotalPoints is maintained incrementally and always equals the
	// sum of Points over Logs.
	TotalPoints int `json:"total_points"`
	// Streak counts consecutive calendar days with at least one log.
	Streak int `json:"streak"`
	// LastPostDate is nil until the first post.
	LastPostDate *Date      `json:"last_post_date"`
	Logs         []LogEntry `json:"logs"`
}

// LogEntry is one completed task. Entries are never edited or removed.
type LogEntry struct {
	ID      int64  `json:"id"`
	Date    Date   `json:"date"`
	DayName string `json:"day_name"`
	Task    string `json:"task"`
	Points  int    `json:"points"`
	Tree    string `json:"tree"`
	Effort  string `json:"effort"`
}

// NewProfile returns the default profile used when no prior state exists.
func NewProfile() *Profile {
	return &Profile{Logs: []LogEntry{}}
}

const dateLayout = "2006-01-02"

// Date is a civil calendar date. It marshals as "YYYY-MM-DD" and
// carries no time-of-day component.
type Date struct {
	t time.Time
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

func (d Date) String() string { return d.t.Format(dateLayout) }

// DayName returns the full weekday name, e.g. "Monday".
func (d Date) DayName() string { return d.t.Weekday().String() }

// ShortDayName returns the abbreviated weekday name, e.g. "Mon".
func (d Date) ShortDayName() string { return d.t.Format("Mon") }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysSince returns the number of whole days from other to d.
// Negative when other is in the future.
func (d Date) DaysSince(other Date) int {
	return int(d.t.Sub(other.t) / (24 * time.Hour))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.t.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
