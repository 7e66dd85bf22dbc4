package keyer

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
	// SleepUntil blocks until the given deadline has passed or ctx is done.
	SleepUntil(ctx context.Context, deadline time.Time) error
}

var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) SleepUntil(ctx context.Context, deadline time.Time) error {
	d := time.Until(deadline)
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
