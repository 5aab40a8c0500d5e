package demo

import (
	"context"
	"time"
)

// Clock lets tests drive the simulated processing delays.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type scaledClock struct {
	scale float64
}

// NewClock returns a real clock whose sleeps are multiplied by scale.
// A zero scale turns sleeps into cancellation checks.
func NewClock(scale float64) Clock {
	if scale < 0 {
		scale = 0
	}
	return scaledClock{scale: scale}
}

func (c scaledClock) Now() time.Time {
	return time.Now()
}

func (c scaledClock) Sleep(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * c.scale)
	if scaled <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
