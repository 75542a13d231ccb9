package behavior_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-mediator/pkg/behavior"
)

func TestRecovery(t *testing.T) {
	t.Run("a downstream panic becomes an error", func(t *testing.T) {
		logger := &recordingLogger{}
		recovery := behavior.NewCommandRecovery[pingCommand, string](logger)

		err := recovery.Handle(context.Background(), pingCommand{}, func(ctx context.Context) error {
			panic("handler exploded")
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "handler exploded")
		assert.Contains(t, err.Error(), "Ping")
		assert.Len(t, logger.byLevel("error"), 1)
	})

	t.Run("a query panic yields the zero result", func(t *testing.T) {
		recovery := behavior.NewQueryRecovery[findQuery, findQueryPayload, string](&recordingLogger{})

		result, err := recovery.Handle(context.Background(), findQuery{}, func(ctx context.Context) (string, error) {
			panic("handler exploded")
		})

		require.Error(t, err)
		assert.Empty(t, result)
	})

	t.Run("success passes through untouched", func(t *testing.T) {
		recovery := behavior.NewCommandRecovery[pingCommand, string](&recordingLogger{})

		err := recovery.Handle(context.Background(), pingCommand{}, func(ctx context.Context) error {
			return nil
		})

		assert.NoError(t, err)
	})
}
