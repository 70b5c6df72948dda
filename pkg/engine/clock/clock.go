// Package clock drives fixed-rate game ticks independently of frame rate.
package clock

import (
	"context"
	"time"
)

// maxCatchUp bounds how many ticks one Advance may report after a stall.
const maxCatchUp = 5

// FixedStep converts variable frame time into a whole number of fixed ticks.
type FixedStep struct {
	period time.Duration
	acc    time.Duration
}

// NewFixedStep creates a stepper firing once per period.
func NewFixedStep(period time.Duration) *FixedStep {
	return &FixedStep{period: period}
}

// Advance adds elapsed frame time and returns the number of ticks now due.
// The remainder below one period is carried to the next call.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if f.period <= 0 || elapsed <= 0 {
		return 0
	}
	f.acc += elapsed
	due := 0
	for f.acc >= f.period {
		f.acc -= f.period
		due++
	}
	if due > maxCatchUp {
		due = maxCatchUp
	}
	return due
}

// Run calls fn once per period until ctx is done. fn runs on the caller's
// goroutine and must finish before the next tick is taken.
func Run(ctx context.Context, period time.Duration, fn func()) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn()
		}
	}
}
