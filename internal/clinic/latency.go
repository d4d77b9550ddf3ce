package clinic

import (
	"context"
	"math/rand/v2"
	"time"
)

// Latency models the network round-trip of a real backend. Every operation
// waits once before touching the store, including operations that go on to
// fail.
type Latency struct {
	Base   time.Duration
	Jitter time.Duration
}

// Wait sleeps for Base plus a random share of Jitter, or returns early with
// the context error if the caller gives up first.
func (l Latency) Wait(ctx context.Context) error {
	d := l.Base
	if l.Jitter > 0 {
		d += rand.N(l.Jitter)
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
