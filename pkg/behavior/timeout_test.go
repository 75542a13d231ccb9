package behavior_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-mediator/pkg/behavior"
)

func TestTimeout(t *testing.T) {
	t.Run("a slow chain fails with a deadline error", func(t *testing.T) {
		timeout := behavior.NewCommandTimeout[pingCommand, string](20 * time.Millisecond)

		err := timeout.Handle(context.Background(), pingCommand{}, func(ctx context.Context) error {
			select {
			case <-time.After(time.Second):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, err.Error(), "Ping")
	})

	t.Run("a fast chain passes through untouched", func(t *testing.T) {
		timeout := behavior.NewCommandTimeout[pingCommand, string](time.Second)

		err := timeout.Handle(context.Background(), pingCommand{}, func(ctx context.Context) error {
			return nil
		})

		assert.NoError(t, err)
	})

	t.Run("a slow query yields the zero result", func(t *testing.T) {
		timeout := behavior.NewQueryTimeout[findQuery, findQueryPayload, string](20 * time.Millisecond)

		result, err := timeout.Handle(context.Background(), findQuery{}, func(ctx context.Context) (string, error) {
			select {
			case <-time.After(time.Second):
				return "late", nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		})

		require.Error(t, err)
		assert.Empty(t, result)
	})
}
