package engine

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"forestlog/internal/storage"
)

func newTestService(t *testing.T, now *time.Time, seed uint64) (*Service, *storage.ProfileStore) {
	t.Helper()
	dir := t.TempDir()
	store := storage.NewProfileStore(filepath.Join(dir, "profile.json"))
	svc := reopenTestService(t, store, now, seed)
	return svc, store
}

func reopenTestService(t *testing.T, store *storage.ProfileStore, now *time.Time, seed uint64) *Service {
	t.Helper()
	svc, err := NewService(store,
		WithRand(rand.New(rand.NewPCG(seed, 0))),
		WithNow(func() time.Time { return *now }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestPostTaskFreshProfileOak(t *testing.T) {
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, &now, 1)

	res, err := svc.PostTask("Shipped the release", EffortOak)
	if err != nil {
		t.Fatalf("PostTask: %v", err)
	}
	if res.Points < 60 || res.Points > 150 {
		t.Errorf("points=%d, want within [60,150]", res.Points)
	}

	p := svc.Profile()
	if p.TotalPoints != res.Points {
		t.Errorf("total=%d, want %d", p.TotalPoints, res.Points)
	}
	if p.Streak != 1 || res.Streak != 1 || !res.StreakExtended {
		t.Errorf("streak=%d (result %d, extended=%v), want 1", p.Streak, res.Streak, res.StreakExtended)
	}
	if len(p.Logs) != 1 {
		t.Fatalf("len(logs)=%d, want 1", len(p.Logs))
	}
	if p.LastPostDate == nil || !p.LastPostDate.Equal(storage.DateOf(now)) {
		t.Errorf("last_post_date=%v, want today", p.LastPostDate)
	}

	e := p.Logs[0]
	if e.ID != 1 {
		t.Errorf("entry id=%d, want 1", e.ID)
	}
	if e.DayName != "Sunday" {
		t.Errorf("day_name=%q, want Sunday", e.DayName)
	}
	if e.Effort != string(EffortOak) {
		t.Errorf("effort=%q", e.Effort)
	}
	if !contains(UnlockedTrees(1), e.Tree) {
		t.Errorf("tree %s not in the level-1 pool", e.Tree)
	}
}

func TestPostTaskRejectsEmptyTask(t *testing.T) {
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, &now, 1)

	for _, task := range []string{"", "   ", "\t\n"} {
		_, err := svc.PostTask(task, EffortSeed)
		var invalid InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("PostTask(%q) err=%v, want InvalidInputError", task, err)
		}
	}
	if len(svc.Profile().Logs) != 0 || svc.Profile().TotalPoints != 0 {
		t.Fatalf("rejected post mutated state")
	}
}

func TestPostTaskRejectsUnknownEffort(t *testing.T) {
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, &now, 1)

	_, err := svc.PostTask("stretch", Effort("Bonsai"))
	var invalid InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("err=%v, want InvalidInputError", err)
	}
}

func TestPostTaskSameDayTwice(t *testing.T) {
	now := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, &now, 2)

	first, err := svc.PostTask("morning run", EffortSeed)
	if err != nil {
		t.Fatalf("first post: %v", err)
	}
	now = now.Add(5 * time.Hour)
	second, err := svc.PostTask("wrote a chapter", EffortSapling)
	if err != nil {
		t.Fatalf("second post: %v", err)
	}

	p := svc.Profile()
	// Same-day posts never advance the streak past +1 for that day,
	// but both still earn points and entries.
	if p.Streak != 1 {
		t.Errorf("streak=%d, want 1", p.Streak)
	}
	if second.StreakExtended {
		t.Errorf("second same-day post reported a streak extension")
	}
	if len(p.Logs) != 2 {
		t.Fatalf("len(logs)=%d, want 2", len(p.Logs))
	}
	if p.Logs[0].ID != 2 || p.Logs[1].ID != 1 {
		t.Errorf("ids=[%d,%d], want newest-first [2,1]", p.Logs[0].ID, p.Logs[1].ID)
	}
	if p.TotalPoints != first.Points+second.Points {
		t.Errorf("total=%d, want %d", p.TotalPoints, first.Points+second.Points)
	}
}

func TestPostTaskConsecutiveDaysExtendStreak(t *testing.T) {
	now := time.Date(2026, 8, 20, 22, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, &now, 3)

	if _, err := svc.PostTask("day one", EffortSeed); err != nil {
		t.Fatalf("post: %v", err)
	}
	now = now.AddDate(0, 0, 1)
	res, err := svc.PostTask("day two", EffortSeed)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if res.Streak != 2 || !res.StreakExtended {
		t.Errorf("streak=%d extended=%v, want 2/true", res.Streak, res.StreakExtended)
	}
}

func TestStreakLapseAcrossSessions(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, &now, 4)
	if _, err := svc.PostTask("before the gap", EffortSapling); err != nil {
		t.Fatalf("post: %v", err)
	}

	// Next session one day later: streak survives.
	now = now.AddDate(0, 0, 1)
	svc = reopenTestService(t, store, &now, 4)
	if got := svc.Profile().Streak; got != 1 {
		t.Errorf("streak after 1-day gap=%d, want 1", got)
	}

	// Next session two days after the post: streak resets.
	now = now.AddDate(0, 0, 1)
	svc = reopenTestService(t, store, &now, 4)
	if got := svc.Profile().Streak; got != 0 {
		t.Errorf("streak after 2-day gap=%d, want 0", got)
	}
}

func TestTotalPointsMatchesLogSum(t *testing.T) {
	now := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, &now, 5)

	efforts := []Effort{EffortSeed, EffortSapling, EffortOak}
	for i := 0; i < 30; i++ {
		if _, err := svc.PostTask("task", efforts[i%3]); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
		sum := 0
		for _, e := range svc.Profile().Logs {
			sum += e.Points
		}
		if svc.Profile().TotalPoints != sum {
			t.Fatalf("after post %d: total=%d, log sum=%d", i, svc.Profile().TotalPoints, sum)
		}
		if i%2 == 0 {
			now = now.AddDate(0, 0, 1)
		}
	}
}

func TestTreeDrawUsesPrePostLevel(t *testing.T) {
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	store := storage.NewProfileStore(filepath.Join(t.TempDir(), "profile.json"))

	// A level-2 player draws from the common pool only, even while the
	// posts push the total toward the next band.
	today := storage.DateOf(now)
	seeded := &storage.Profile{TotalPoints: 501, Streak: 1, LastPostDate: &today, Logs: []storage.LogEntry{}}
	if err := store.Save(seeded); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	svc := reopenTestService(t, store, &now, 6)
	for i := 0; i < 30; i++ {
		res, err := svc.PostTask("small win", EffortSeed)
		if err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
		if res.LevelBefore != 2 {
			t.Fatalf("post %d at level %d; fixture overflowed the band", i, res.LevelBefore)
		}
		if !contains(treesCommon, res.Entry.Tree) {
			t.Fatalf("level-2 draw got %s, want a common tree", res.Entry.Tree)
		}
	}
}

func TestProfileSurvivesRestart(t *testing.T) {
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, &now, 7)

	if _, err := svc.PostTask("first", EffortSapling); err != nil {
		t.Fatalf("post: %v", err)
	}
	if _, err := svc.PostTask("second", EffortOak); err != nil {
		t.Fatalf("post: %v", err)
	}
	want, err := json.Marshal(svc.Profile())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	reopened := reopenTestService(t, store, &now, 7)
	got, err := json.Marshal(reopened.Profile())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("reloaded profile differs:\n got %s\nwant %s", got, want)
	}
}
