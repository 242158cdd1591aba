package utils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRetryReturnsAfterSuccess(t *testing.T) {
	attempts := 0
	err := Retry(context.Background(), time.Second, time.Millisecond, zap.NewNop(), func() *RetryError {
		attempts++
		if attempts < 3 {
			return RetryableError(fmt.Errorf("not ready yet"))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryStopsOnNonRetryableError(t *testing.T) {
	attempts := 0
	cause := fmt.Errorf("permanent failure")
	err := Retry(context.Background(), time.Second, time.Millisecond, zap.NewNop(), func() *RetryError {
		attempts++
		return NonRetryableError(cause)
	})
	assert.Equal(t, 1, attempts)
	assert.Equal(t, cause, err)
}

func TestRetryTimesOut(t *testing.T) {
	cause := fmt.Errorf("still waiting")
	err := Retry(context.Background(), 10*time.Millisecond, time.Millisecond, zap.NewNop(), func() *RetryError {
		return RetryableError(cause)
	})
	require.Error(t, err)
	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 10*time.Millisecond, timeoutErr.Timeout)
	assert.ErrorIs(t, err, cause)
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Retry(ctx, time.Minute, 50*time.Millisecond, zap.NewNop(), func() *RetryError {
		return RetryableError(fmt.Errorf("never succeeds"))
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryHelpersRejectNilErrors(t *testing.T) {
	assert.False(t, RetryableError(nil).Retryable)
	assert.False(t, NonRetryableError(nil).Retryable)
}
