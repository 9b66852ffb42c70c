package retry

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBusy = &os.PathError{Op: "rename", Path: "locked.zip", Err: syscall.EBUSY}

func fastExecutor(attempts int) *Executor {
	return NewFilesystemExecutor(attempts, WithInitialDelay(time.Millisecond), WithJitter(0))
}

func TestExecutor_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	err := fastExecutor(3).Execute(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecutor_RetriesTransient(t *testing.T) {
	calls := 0
	var retries []int
	exec := fastExecutor(5).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		retries = append(retries, attempt)
	})

	err := exec.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errBusy
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{0, 1}, retries)
}

func TestExecutor_FatalErrorNotRetried(t *testing.T) {
	calls := 0
	missing := &os.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}
	err := fastExecutor(5).Execute(context.Background(), func(context.Context) error {
		calls++
		return missing
	})
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, 1, calls)
}

func TestExecutor_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := fastExecutor(2).Execute(context.Background(), func(context.Context) error {
		calls++
		return errBusy
	})
	assert.True(t, errors.Is(err, syscall.EBUSY))
	assert.Equal(t, 3, calls, "initial attempt plus two retries")
}

func TestExecutor_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	exec := NewFilesystemExecutor(-1, WithInitialDelay(time.Hour), WithJitter(0)).
		WithOnRetry(func(int, error, time.Duration) { cancel() })

	err := exec.Execute(ctx, func(context.Context) error { return errBusy })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecutor_WithOnRetryDoesNotMutate(t *testing.T) {
	base := fastExecutor(1)
	_ = base.WithOnRetry(func(int, error, time.Duration) {})
	assert.Nil(t, base.onRetry)
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewExecutor(nil, NewExponentialBackoff(1)) })
	assert.Panics(t, func() { NewExecutor(NewFilesystemErrorClassifier(), nil) })
}
