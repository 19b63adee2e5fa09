package flappy

import (
	"context"
	"errors"
	"time"
)

// ErrFrameBudget is returned by Run when a FrameBudget scheduler runs out.
var ErrFrameBudget = errors.New("flappy: frame budget exhausted")

// Scheduler decides when the next frame runs.
type Scheduler interface {
	// Next blocks until the next frame is due.
	Next(ctx context.Context) error
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(ctx context.Context) error

// Next calls f(ctx).
func (f SchedulerFunc) Next(ctx context.Context) error {
	return f(ctx)
}

// Immediate runs frames back to back.
var Immediate Scheduler = SchedulerFunc(func(ctx context.Context) error {
	return ctx.Err()
})

// Run drives s until it ends, the context is done, or sched fails.
// It returns nil when the session ended by collision.
func Run(ctx context.Context, s *Session, sched Scheduler) error {
	for {
		s.Step()
		if s.Paused() {
			return nil
		}
		if err := sched.Next(ctx); err != nil {
			return err
		}
	}
}

// TickerScheduler paces frames with a wall-clock ticker.
type TickerScheduler struct {
	ticker *time.Ticker
}

// NewTickerScheduler creates a scheduler running fps frames per second.
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Next waits for the next tick.
func (t *TickerScheduler) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (t *TickerScheduler) Stop() {
	t.ticker.Stop()
}

// FrameBudget lets n frames run, then fails with ErrFrameBudget.
func FrameBudget(n int, next Scheduler) Scheduler {
	ran := 0
	return SchedulerFunc(func(ctx context.Context) error {
		ran++
		if ran >= n {
			return ErrFrameBudget
		}
		return next.Next(ctx)
	})
}

// BeforeNext calls hook between frames, before waiting on next. Input
// handlers hook in here so their effects land on the following frame.
func BeforeNext(hook func(), next Scheduler) Scheduler {
	return SchedulerFunc(func(ctx context.Context) error {
		hook()
		return next.Next(ctx)
	})
}
