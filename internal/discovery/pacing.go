package discovery

import (
	"context"
	"time"
)

// PacingPolicy controls the delay between consecutive provider calls of one
// category and how rate-limited calls are retried.
type PacingPolicy struct {
	BaseDelay   time.Duration
	MinDelay    time.Duration
	MaxDelay    time.Duration
	ShrinkStep  time.Duration
	BackoffStep time.Duration
	// SuccessesToShrink consecutive successes shorten the delay by ShrinkStep.
	SuccessesToShrink int
	// MaxRetries is the number of extra attempts after a rate-limited call.
	MaxRetries int
}

func DefaultPacingPolicy() PacingPolicy {
	return PacingPolicy{
		BaseDelay:         275 * time.Millisecond,
		MinDelay:          100 * time.Millisecond,
		MaxDelay:          3 * time.Second,
		ShrinkStep:        50 * time.Millisecond,
		BackoffStep:       500 * time.Millisecond,
		SuccessesToShrink: 2,
		MaxRetries:        2,
	}
}

// Pacer is the per-category state of a PacingPolicy. It is not safe for
// concurrent use; each category worker owns one.
type Pacer struct {
	policy  PacingPolicy
	delay   time.Duration
	streak  int
	started bool
}

func (p PacingPolicy) NewPacer() *Pacer {
	return &Pacer{policy: p, delay: p.BaseDelay}
}

// Delay is the wait before the next call.
func (p *Pacer) Delay() time.Duration {
	return p.delay
}

// Before returns the wait to apply before the next call; the first call of a
// category is not delayed.
func (p *Pacer) Before() time.Duration {
	if !p.started {
		p.started = true
		return 0
	}
	return p.delay
}

func (p *Pacer) OnSuccess() {
	p.streak++
	if p.policy.SuccessesToShrink > 0 && p.streak >= p.policy.SuccessesToShrink {
		p.streak = 0
		p.delay -= p.policy.ShrinkStep
		if p.delay < p.policy.MinDelay {
			p.delay = p.policy.MinDelay
		}
	}
}

func (p *Pacer) OnRateLimited() {
	p.streak = 0
	p.delay += p.policy.BackoffStep
	if p.policy.MaxDelay > 0 && p.delay > p.policy.MaxDelay {
		p.delay = p.policy.MaxDelay
	}
}

func (p *Pacer) OnFailure() {
	p.streak = 0
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
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
