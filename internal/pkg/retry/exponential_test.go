package retry

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRetrier(maxRetries int) *Retrier {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(Config{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
	}, log)
}

func TestExecuteSucceedsAfterRetries(t *testing.T) {
	r := newTestRetrier(3)

	attempts := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestExecuteExhaustsRetries(t *testing.T) {
	r := newTestRetrier(2)

	sentinel := errors.New("still failing")
	attempts := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		attempts++
		return sentinel
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, 3, attempts)
}

func TestExecuteStopsOnNonRetryableError(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	sentinel := errors.New("permanent")
	r := New(Config{
		MaxRetries: 5,
		BaseDelay:  time.Millisecond,
		MaxDelay:   time.Millisecond,
		Multiplier: 2.0,
		Retryable:  func(err error) bool { return !errors.Is(err, sentinel) },
	}, log)

	attempts := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		attempts++
		return sentinel
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestExecuteHonorsContextCancellation(t *testing.T) {
	r := newTestRetrier(10)

	ctx, cancel := context.WithCancel(context.Background())
	err := r.Execute(ctx, func(context.Context) error {
		cancel()
		return errors.New("transient")
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
