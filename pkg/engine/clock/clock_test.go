package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFixedStep_CarriesRemainder(t *testing.T) {
	f := NewFixedStep(100 * time.Millisecond)
	frame := time.Second / 60

	total := 0
	for i := 0; i < 60; i++ {
		total += f.Advance(frame)
	}
	// 60 frames of 1/60s is one second minus integer truncation of the frame length.
	if total != 9 && total != 10 {
		t.Errorf("ticks after 60 frames = %d, want 9 or 10", total)
	}
}

func TestFixedStep_ExactPeriods(t *testing.T) {
	f := NewFixedStep(100 * time.Millisecond)
	if got := f.Advance(99 * time.Millisecond); got != 0 {
		t.Errorf("Advance(99ms) = %d, want 0", got)
	}
	if got := f.Advance(1 * time.Millisecond); got != 1 {
		t.Errorf("Advance(+1ms) = %d, want 1", got)
	}
	if got := f.Advance(250 * time.Millisecond); got != 2 {
		t.Errorf("Advance(250ms) = %d, want 2", got)
	}
	if got := f.Advance(50 * time.Millisecond); got != 1 {
		t.Errorf("Advance(50ms) with 50ms carried = %d, want 1", got)
	}
}

func TestFixedStep_CatchUpBounded(t *testing.T) {
	f := NewFixedStep(100 * time.Millisecond)
	if got := f.Advance(10 * time.Second); got != maxCatchUp {
		t.Errorf("Advance(10s) = %d, want %d", got, maxCatchUp)
	}
}

func TestFixedStep_ZeroInputs(t *testing.T) {
	if got := NewFixedStep(0).Advance(time.Second); got != 0 {
		t.Errorf("zero period Advance = %d, want 0", got)
	}
	if got := NewFixedStep(time.Millisecond).Advance(-time.Second); got != 0 {
		t.Errorf("negative elapsed Advance = %d, want 0", got)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Run(ctx, time.Millisecond, func() {
		calls++
		if calls == 3 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if calls < 3 {
		t.Errorf("calls = %d, want at least 3", calls)
	}
}
