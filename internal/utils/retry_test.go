package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/price_dashboard/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetryConfig_Do(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		r := utils.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond}
		err := r.Do(context.Background(), "fetch", func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errBoom
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up and wraps the last error", func(t *testing.T) {
		calls := 0
		r := utils.RetryConfig{MaxAttempts: 2, BaseDelay: time.Millisecond}
		err := r.Do(context.Background(), "fetch", func(ctx context.Context) error {
			calls++
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, 2, calls)
	})

	t.Run("zero attempts still runs once", func(t *testing.T) {
		calls := 0
		err := utils.RetryConfig{}.Do(context.Background(), "fetch", func(ctx context.Context) error {
			calls++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		r := utils.RetryConfig{MaxAttempts: 5, BaseDelay: time.Hour}
		err := r.Do(ctx, "fetch", func(ctx context.Context) error {
			calls++
			cancel()
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, 1, calls)
	})
}
