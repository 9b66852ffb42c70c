package retry

import (
	"context"
	"time"

	"github.com/vvka-141/egrn/pkg/egrn"
)

// Executor runs an operation, retrying transient failures with backoff.
//
// Execute is safe for concurrent use. WithOnRetry returns a new instance and
// leaves the receiver unchanged.
type Executor struct {
	classifier egrn.ErrorClassifier
	strategy   egrn.BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor.
// Panics if classifier or strategy is nil.
func NewExecutor(classifier egrn.ErrorClassifier, strategy egrn.BackoffStrategy) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
	}
}

// NewFilesystemExecutor returns an executor for local file operations with
// the given number of retries.
func NewFilesystemExecutor(maxAttempts int, opts ...BackoffOption) *Executor {
	return NewExecutor(NewFilesystemErrorClassifier(), NewExponentialBackoff(maxAttempts, opts...))
}

// WithOnRetry returns a copy of the executor that calls callback before each retry.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs operation and returns the error of the last attempt.
// Fatal errors are returned immediately; context cancellation during a
// backoff wait returns ctx.Err().
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	err := operation(ctx)
	if err == nil || !e.classifier.IsTransient(err) {
		return err
	}

	maxAttempts := e.strategy.MaxAttempts()
	for attempt := 0; maxAttempts < 0 || attempt < maxAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

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
		if err == nil || !e.classifier.IsTransient(err) {
			return err
		}
	}

	return err
}
