package app

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/wavecast/dial/internal/radio"
	"github.com/wavecast/dial/internal/state"
)

const (
	// kickDelay batches near-simultaneous triggers (startup, command
	// completion, focus regained) into one refresh.
	kickDelay          = 10 * time.Millisecond
	foregroundInterval = 3141 * time.Millisecond
	backgroundInterval = 6666 * time.Millisecond
)

// Scheduler decides when to pull a fresh snapshot. It owns at most one
// pending timer; arming a new one always cancels the previous, so refreshes
// never pile up or fire twice.
type Scheduler struct {
	mu         sync.Mutex
	timer      *time.Timer
	gen        uint64 // bumped on every arm; lets fire detect a newer timer
	foreground bool
	stopped    bool

	refresh func() // runs on the timer goroutine

	kick   time.Duration
	active time.Duration
	idle   time.Duration
}

// NewScheduler builds a scheduler driving refresh. The scheduler starts in
// the foreground state and idle; call ScheduleImmediate to begin polling.
func NewScheduler(refresh func()) *Scheduler {
	return &Scheduler{
		foreground: true,
		refresh:    refresh,
		kick:       kickDelay,
		active:     foregroundInterval,
		idle:       backgroundInterval,
	}
}

// ScheduleImmediate cancels any pending timer and schedules a refresh after
// the short kick delay.
func (s *Scheduler) ScheduleImmediate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.armLocked(s.kick)
}

// ScheduleAfterCommand is the post-command refresh trigger. Mutating
// endpoints return no snapshot, so the effect is only observable through a
// re-pull.
func (s *Scheduler) ScheduleAfterCommand() {
	s.ScheduleImmediate()
}

// SetForeground records whether the UI is being watched. Regaining the
// foreground cancels the long idle timer and refreshes promptly; losing it
// simply makes the next re-arm use the long interval.
func (s *Scheduler) SetForeground(foreground bool) {
	s.mu.Lock()
	changed := s.foreground != foreground
	s.foreground = foreground
	if changed && foreground && !s.stopped {
		s.armLocked(s.kick)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
}

// Stop cancels the pending timer and prevents any further scheduling.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler) armLocked(d time.Duration) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(d, func() { s.fire(gen) })
}

func (s *Scheduler) fire(gen uint64) {
	s.refresh()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	// A trigger armed while the refresh ran (a command finishing, a focus
	// change) owns the timer now; the plain interval re-arm must not
	// replace its shorter delay.
	if s.gen != gen {
		return
	}
	if s.foreground {
		s.armLocked(s.active)
	} else {
		s.armLocked(s.idle)
	}
}

// refreshSnapshot is the scheduler's refresh body: one full read applied
// wholesale. Failures are logged and otherwise ignored; the last good
// snapshot stays visible and the next poll is the retry.
func refreshSnapshot(ctx context.Context, api radio.API, store *state.Store) {
	now, err := api.Now(ctx)
	if err != nil {
		log.Printf("snapshot refresh failed: %v", err)
		return
	}
	store.ApplyFull(state.FromNowResponse(now))
}
