package app

import (
	"context"

	"github.com/wavecast/dial/internal/radio"
)

// Controls exposes the mutating playout operations. Each one is a single
// transport call; commands are independent of each other and are never
// serialized. A successful command nudges the scheduler because the
// command response carries no snapshot; the UI observes the effect through
// the following refresh, never through optimistic local mutation.
type Controls struct {
	api   radio.API
	sched *Scheduler
}

// NewControls wires the command dispatcher to its transport and scheduler.
func NewControls(api radio.API, sched *Scheduler) *Controls {
	return &Controls{api: api, sched: sched}
}

// Pause toggles playout pause. The server decides the resulting state.
func (c *Controls) Pause(ctx context.Context) error {
	return c.exec(ctx, c.api.Pause)
}

// Repeat queues the current clip to play again.
func (c *Controls) Repeat(ctx context.Context) error {
	return c.exec(ctx, c.api.Repeat)
}

// Skip skips the clip currently airing.
func (c *Controls) Skip(ctx context.Context) error {
	return c.exec(ctx, c.api.Skip)
}

// ScheduleClip enqueues a library clip by id. Unknown ids come back as
// business errors and are propagated untouched.
func (c *Controls) ScheduleClip(ctx context.Context, fileID string) error {
	return c.exec(ctx, func(ctx context.Context) error {
		return c.api.Schedule(ctx, fileID)
	})
}

// News schedules the news clip. The UI gates this on the server's config
// flag; if invoked while disabled the server's business error passes
// through cleanly.
func (c *Controls) News(ctx context.Context) error {
	return c.exec(ctx, c.api.ScheduleNews)
}

func (c *Controls) exec(ctx context.Context, op func(context.Context) error) error {
	if err := op(ctx); err != nil {
		// No refresh and no local mutation on failure; the caller surfaces
		// the error to the operator.
		return err
	}
	c.sched.ScheduleAfterCommand()
	return nil
}
