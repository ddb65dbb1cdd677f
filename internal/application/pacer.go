package application

import (
	"context"

	"golang.org/x/time/rate"
)

type pacer interface {
	Wait(ctx context.Context) error
}

type limiterAdapter struct {
	limiter *rate.Limiter
}

// newTokenBucketPacer returns nil when pacing is disabled.
func newTokenBucketPacer(roundsPerSecond float64) pacer {
	if roundsPerSecond <= 0 {
		return nil
	}

	return &limiterAdapter{
		limiter: rate.NewLimiter(rate.Limit(roundsPerSecond), 1),
	}
}

func (l *limiterAdapter) Wait(ctx context.Context) error {
	if l == nil || l.limiter == nil {
		return ctx.Err()
	}
	return l.limiter.Wait(ctx)
}
