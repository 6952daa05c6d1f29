package retry

import (
	"math"
	"math/rand"
	"time"
)

// ExponentialBackoff grows the delay by multiplier per attempt, capped at
// maxDelay, with +/- jitter applied as a fraction of the delay.
type ExponentialBackoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
	multiplier   float64
	maxAttempts  int // retries after the first attempt; negative means unlimited
	jitter       float64
	random       func() float64
}

// BackoffOption configures an ExponentialBackoff.
type BackoffOption func(*ExponentialBackoff)

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) { b.initialDelay = d }
}

// WithMaxDelay caps the delay between retries.
func WithMaxDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) { b.maxDelay = d }
}

// WithMultiplier sets the per-attempt growth factor.
func WithMultiplier(m float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.multiplier = m }
}

// WithJitter sets the jitter fraction (0 disables it).
func WithJitter(j float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.jitter = j }
}

// WithRandom replaces the [0,1) source used for jitter.
func WithRandom(f func() float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.random = f }
}

// NewExponentialBackoff returns a strategy allowing maxAttempts retries,
// starting at 200ms and capped at 5s.
func NewExponentialBackoff(maxAttempts int, opts ...BackoffOption) *ExponentialBackoff {
	b := &ExponentialBackoff{
		initialDelay: 200 * time.Millisecond,
		maxDelay:     5 * time.Second,
		multiplier:   2.0,
		maxAttempts:  maxAttempts,
		jitter:       0.1,
		random:       rand.Float64,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NextDelay returns the wait before retry number attempt (0-based).
func (b *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	delay := float64(b.initialDelay) * math.Pow(b.multiplier, float64(attempt))
	delay = math.Min(delay, float64(b.maxDelay))

	if b.jitter > 0 {
		delay *= 1 + b.jitter*(b.random()*2-1)
	}
	return time.Duration(delay)
}

// MaxAttempts returns the number of retries allowed after the first attempt.
func (b *ExponentialBackoff) MaxAttempts() int {
	return b.maxAttempts
}
