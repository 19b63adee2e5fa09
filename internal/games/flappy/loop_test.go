package flappy

import (
	"context"
	"errors"
	"testing"
)

func TestRunFrameBudget(t *testing.T) {
	s := newTestSession(t, 1)

	err := Run(context.Background(), s, FrameBudget(5, Immediate))
	if !errors.Is(err, ErrFrameBudget) {
		t.Fatalf("Run() error = %v, expected ErrFrameBudget", err)
	}
	if s.Frame() != 5 {
		t.Errorf("Frame() = %d, expected 5", s.Frame())
	}
	if s.Paused() {
		t.Error("session should still be running")
	}
}

func TestRunStopsOnCollision(t *testing.T) {
	s := newTestSession(t, 1)
	s.player.Y = 377

	calls := 0
	counting := SchedulerFunc(func(ctx context.Context) error {
		calls++
		return nil
	})

	if err := Run(context.Background(), s, counting); err != nil {
		t.Fatalf("Run() error = %v, expected nil", err)
	}
	if calls != 0 {
		t.Errorf("scheduler called %d times after the collision frame", calls)
	}
	if s.Frame() != 1 {
		t.Errorf("Frame() = %d, expected 1", s.Frame())
	}
}

func TestRunContextCanceled(t *testing.T) {
	s := newTestSession(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, s, Immediate); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, expected context.Canceled", err)
	}
	if s.Frame() != 1 {
		t.Errorf("Frame() = %d, expected 1", s.Frame())
	}
}

func TestBeforeNext(t *testing.T) {
	s := newTestSession(t, 1)

	hooks := 0
	sched := FrameBudget(10, BeforeNext(func() { hooks++ }, Immediate))
	if err := Run(context.Background(), s, sched); !errors.Is(err, ErrFrameBudget) {
		t.Fatalf("Run() error = %v, expected ErrFrameBudget", err)
	}
	// The budget check runs before the hook on the final frame.
	if hooks != 9 {
		t.Errorf("hook called %d times, expected 9", hooks)
	}
}

func TestTickerSchedulerCanceled(t *testing.T) {
	sched := NewTickerScheduler(1)
	defer sched.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sched.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Next() error = %v, expected context.Canceled", err)
	}
}

func TestTickerSchedulerTicks(t *testing.T) {
	sched := NewTickerScheduler(200)
	defer sched.Stop()

	for i := 0; i < 3; i++ {
		if err := sched.Next(context.Background()); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
}
