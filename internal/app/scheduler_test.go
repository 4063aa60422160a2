package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wavecast/dial/internal/radio"
	"github.com/wavecast/dial/internal/state"
)

func newTestScheduler(fn func()) *Scheduler {
	s := NewScheduler(fn)
	// Short kick, effectively disabled re-arm so tests count exact fires.
	s.kick = 10 * time.Millisecond
	s.active = time.Hour
	s.idle = time.Hour
	return s
}

func waitForCount(t *testing.T, what string, counter *atomic.Int32, want int32) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if counter.Load() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s (have %d, want %d)", what, counter.Load(), want)
}

func TestScheduler_CoalescesImmediateTriggers(t *testing.T) {
	t.Parallel()

	var fires atomic.Int32
	s := newTestScheduler(func() { fires.Add(1) })
	defer s.Stop()

	// Multiple triggers in quick succession collapse into one refresh.
	s.ScheduleImmediate()
	s.ScheduleImmediate()
	s.ScheduleAfterCommand()

	time.Sleep(150 * time.Millisecond)
	if got := fires.Load(); got != 1 {
		t.Fatalf("refresh fired %d times, want exactly 1", got)
	}
}

func TestScheduler_RearmsAfterRefresh(t *testing.T) {
	t.Parallel()

	var fires atomic.Int32
	s := newTestScheduler(func() { fires.Add(1) })
	s.active = 15 * time.Millisecond
	defer s.Stop()

	s.ScheduleImmediate()
	waitForCount(t, "recurring polls", &fires, 3)
}

func TestScheduler_CommandDuringRefreshKicksAgain(t *testing.T) {
	t.Parallel()

	var fires atomic.Int32
	var s *Scheduler
	s = newTestScheduler(func() {
		if fires.Add(1) == 1 {
			// A command completing while this refresh is still running
			// arms the short kick; the interval re-arm that follows the
			// refresh must not replace it.
			s.ScheduleAfterCommand()
		}
	})
	defer s.Stop()

	s.ScheduleImmediate()
	// With active pinned at an hour, a second fire can only come from the
	// post-command kick surviving the re-arm.
	waitForCount(t, "post-command refresh", &fires, 2)
}

func TestScheduler_BackgroundUsesIdleInterval(t *testing.T) {
	t.Parallel()

	var fires atomic.Int32
	s := newTestScheduler(func() { fires.Add(1) })
	s.idle = 15 * time.Millisecond
	defer s.Stop()

	s.SetForeground(false)
	s.ScheduleImmediate()
	// With active pinned at an hour, repeated fires prove the idle interval
	// is in effect.
	waitForCount(t, "idle polls", &fires, 3)
}

func TestScheduler_ForegroundTransitionKicks(t *testing.T) {
	t.Parallel()

	var fires atomic.Int32
	s := newTestScheduler(func() { fires.Add(1) })
	defer s.Stop()

	s.SetForeground(false)
	time.Sleep(50 * time.Millisecond)
	if got := fires.Load(); got != 0 {
		t.Fatalf("backgrounding alone fired %d refreshes, want 0", got)
	}

	s.SetForeground(true)
	waitForCount(t, "foreground kick", &fires, 1)

	// Re-asserting the current state is not a transition.
	s.SetForeground(true)
	time.Sleep(50 * time.Millisecond)
	if got := fires.Load(); got != 1 {
		t.Fatalf("redundant SetForeground fired again: %d", got)
	}
}

func TestScheduler_StopCancelsPendingTimer(t *testing.T) {
	t.Parallel()

	var fires atomic.Int32
	s := newTestScheduler(func() { fires.Add(1) })

	s.ScheduleImmediate()
	s.Stop()
	time.Sleep(50 * time.Millisecond)
	if got := fires.Load(); got != 0 {
		t.Fatalf("refresh fired %d times after Stop, want 0", got)
	}

	s.ScheduleImmediate()
	time.Sleep(50 * time.Millisecond)
	if got := fires.Load(); got != 0 {
		t.Fatalf("stopped scheduler still fired %d times", got)
	}
}

func TestRefreshSnapshot_AppliesFullRead(t *testing.T) {
	t.Parallel()

	var store state.Store
	api := &fakeAPI{now: &radio.NowResponse{
		Now:     &radio.NowPlaying{Current: "Song A"},
		Library: radio.LibraryStats{Music: 9},
		Uptime:  "1 day",
	}}

	refreshSnapshot(context.Background(), api, &store)

	snap := store.Snapshot()
	if snap == nil || snap.Now.Current != "Song A" || snap.Library.Music != 9 {
		t.Fatalf("snapshot = %#v, want applied read", snap)
	}
}

func TestRefreshSnapshot_FailureKeepsLastGoodSnapshot(t *testing.T) {
	t.Parallel()

	var store state.Store
	store.ApplyFull(state.Snapshot{Now: radio.NowPlaying{Current: "Song A"}})

	api := &fakeAPI{fail: map[string]error{"now": errors.New("boom")}}
	refreshSnapshot(context.Background(), api, &store)

	snap := store.Snapshot()
	if snap == nil || snap.Now.Current != "Song A" {
		t.Fatalf("snapshot = %#v, want last good value preserved", snap)
	}
	// Polled read failures never touch connectivity.
	if !store.Connected() {
		t.Fatal("refresh failure flipped connectivity")
	}
}
