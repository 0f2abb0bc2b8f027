package engine

import (
	"log/slog"
	"strings"
	"time"

	"forestlog/internal/storage"
)

// Service owns the in-memory profile and is the only thing that
// mutates it. The presentation layer holds a Service and calls queries
// plus the one command, PostTask.
type Service struct {
	store   *storage.ProfileStore
	profile *storage.Profile

	rng    Rand
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Service)

// WithRand substitutes the reward random source (seeded in tests).
func WithRand(r Rand) Option {
	return func(s *Service) { s.rng = r }
}

// WithNow substitutes the clock used to derive "today".
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService loads the profile and applies the streak lapse check once.
// A missing profile starts fresh; an unreadable one is discarded with a
// warning rather than silently, so lost history is at least observable.
func NewService(store *storage.ProfileStore, opts ...Option) (*Service, error) {
	s := &Service{
		store:  store,
		rng:    newDefaultRand(),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	p, status, err := store.Load()
	if err != nil {
		return nil, err
	}
	switch status {
	case storage.LoadFresh:
		s.logger.Info("no saved profile, starting fresh", "path", store.Path())
	case storage.LoadCorrupt:
		s.logger.Warn("saved profile is unreadable, starting fresh", "path", store.Path())
	}

	if ApplyLapse(p, s.today()) {
		s.logger.Info("streak lapsed", "last_post", p.LastPostDate.String())
	}
	s.profile = p
	return s, nil
}

func (s *Service) today() storage.Date {
	return storage.DateOf(s.now())
}

// Profile returns the live profile. Callers must treat it as read-only.
func (s *Service) Profile() *storage.Profile { return s.profile }

// Level returns the current level from the running point total.
func (s *Service) Level() int {
	return LevelForPoints(s.profile.TotalPoints)
}

// TodayEntries returns today's log entries, newest first.
func (s *Service) TodayEntries() []storage.LogEntry {
	return entriesOn(s.profile.Logs, s.today())
}

// WeeklySeries returns the trailing 7-day point buckets, oldest first.
func (s *Service) WeeklySeries() []DayPoints {
	return WeeklySeries(s.profile.Logs, s.today())
}

// Archive returns the full log, newest first.
func (s *Service) Archive() []storage.LogEntry {
	return s.profile.Logs
}

// PostResult reports one accepted post for caller confirmation.
type PostResult struct {
	Entry       storage.LogEntry
	Points      int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	// Streak after the post; StreakExtended is false when today
	// already had a post.
	Streak         int
	StreakExtended bool
}

// PostTask records one accomplishment: rolls the point reward and tree
// for the given effort, applies the streak rule, appends the log entry
// and persists the profile. The tree is drawn from the pool unlocked by
// the level before this post's points are credited.
//
// The transition is atomic: changes are staged on a copy and the live
// profile is only swapped in after a successful save.
func (s *Service) PostTask(task string, effort Effort) (*PostResult, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return nil, InvalidInputError{Reason: "task description is empty"}
	}
	if !effort.IsValid() {
		return nil, InvalidInputError{Reason: "unknown effort level"}
	}

	today := s.today()

	next := *s.profile
	streakExtended := next.LastPostDate == nil || !next.LastPostDate.Equal(today)
	if streakExtended {
		next.Streak++
	}

	levelBefore := LevelForPoints(next.TotalPoints)

	points, err := rollPoints(s.rng, effort)
	if err != nil {
		return nil, err
	}
	entry := storage.LogEntry{
		ID:      nextEntryID(next.Logs),
		Date:    today,
		DayName: today.DayName(),
		Task:    task,
		Points:  points,
		Tree:    selectTree(s.rng, levelBefore),
		Effort:  string(effort),
	}

	insertAtHead(&next, entry)
	next.TotalPoints += points
	next.LastPostDate = &today

	if err := s.store.Save(&next); err != nil {
		return nil, err
	}
	s.profile = &next

	levelAfter := LevelForPoints(next.TotalPoints)
	return &PostResult{
		Entry:          entry,
		Points:         points,
		LevelBefore:    levelBefore,
		LevelAfter:     levelAfter,
		LevelUp:        levelAfter > levelBefore,
		Streak:         next.Streak,
		StreakExtended: streakExtended,
	}, nil
}
