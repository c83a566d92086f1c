// Package pacer spaces out requests to target hosts.
package pacer

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer is called after each URL, whatever its outcome.
type Pacer interface {
	Wait(ctx context.Context) error
}

// FixedDelay sleeps for a constant duration.
type FixedDelay struct {
	Delay time.Duration
}

func (p FixedDelay) Wait(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RateLimit allows at most rps requests per second with no burst.
type RateLimit struct {
	limiter *rate.Limiter
}

func NewRateLimit(rps float64) *RateLimit {
	return &RateLimit{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

func (p *RateLimit) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// None never waits.
type None struct{}

func (None) Wait(ctx context.Context) error { return ctx.Err() }

// New picks the policy: a positive rps wins over delay.
func New(delay time.Duration, rps float64) Pacer {
	if rps > 0 {
		return NewRateLimit(rps)
	}
	return FixedDelay{Delay: delay}
}
