// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces the unconditional politeness delay before each outbound
// request. It is deliberately not adaptive backoff: every Wait blocks for
// the configured delay regardless of how the previous request went, so the
// pipeline's timing stays predictable.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer returns a Pacer whose Wait blocks for delay. A zero or negative
// delay yields a no-op Pacer, which tests use to run without real sleeps.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{}
	}
	l := rate.NewLimiter(rate.Every(delay), 1)
	// Drain the initial token so the first Wait observes the delay too.
	l.Allow()
	return &Pacer{limiter: l}
}

// Wait blocks until the delay has elapsed or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}
