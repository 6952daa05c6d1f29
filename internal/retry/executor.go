package retry

import (
	"context"
	"time"
)

// Classifier reports whether an error is transient.
type Classifier interface {
	IsTransient(err error) bool
}

// Strategy computes the wait before each retry.
type Strategy interface {
	NextDelay(attempt int) time.Duration
	MaxAttempts() int
}

// Executor runs an operation, retrying transient failures.
// Safe for concurrent use; WithOnRetry returns a copy.
type Executor struct {
	classifier Classifier
	strategy   Strategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates an Executor. Panics if classifier or strategy is nil.
func NewExecutor(classifier Classifier, strategy Strategy) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{classifier: classifier, strategy: strategy}
}

// WithOnRetry returns a copy of e that calls callback before each wait.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs operation until it succeeds, fails permanently, runs out of
// retries or ctx is done. It returns the last error.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	err := operation(ctx)
	limit := e.strategy.MaxAttempts()

	for attempt := 0; err != nil && e.classifier.IsTransient(err) && (limit < 0 || attempt < limit); attempt++ {
		delay := e.strategy.NextDelay(attempt)
		if e.onRetry != nil {
			e.onRetry(attempt, err, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		err = operation(ctx)
	}

	return err
}
