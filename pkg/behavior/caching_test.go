package behavior_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/behavior"
	"github.com/mateusmacedo/go-mediator/pkg/infrastructure"
	"github.com/mateusmacedo/go-mediator/pkg/infrastructure/memcache"
)

func newCachedQueryBus(ttl time.Duration, handlerCalls *int) application.QueryBus[findQuery, findQueryPayload, string] {
	bus := infrastructure.NewSimpleQueryBus[findQuery, findQueryPayload, string]()
	bus.Use(behavior.NewQueryCaching[findQuery, findQueryPayload, string](memcache.New(), ttl, &recordingLogger{}))
	_ = bus.RegisterHandler("Find", application.QueryHandlerFunc[findQuery, findQueryPayload, string](func(ctx context.Context, query findQuery) (string, error) {
		*handlerCalls++
		return "value-for-" + query.Payload().ID, nil
	}))
	return bus
}

func TestQueryCaching(t *testing.T) {
	t.Run("equal content within the TTL invokes the handler once", func(t *testing.T) {
		var handlerCalls int
		bus := newCachedQueryBus(time.Second, &handlerCalls)
		query := findQuery{data: findQueryPayload{ID: "42"}}

		first, err := bus.Dispatch(context.Background(), query)
		require.NoError(t, err)
		second, err := bus.Dispatch(context.Background(), query)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, handlerCalls)
	})

	t.Run("the handler runs again after the TTL expires", func(t *testing.T) {
		var handlerCalls int
		bus := newCachedQueryBus(50*time.Millisecond, &handlerCalls)
		query := findQuery{data: findQueryPayload{ID: "42"}}

		_, err := bus.Dispatch(context.Background(), query)
		require.NoError(t, err)
		_, err = bus.Dispatch(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, 1, handlerCalls)

		time.Sleep(80 * time.Millisecond)

		_, err = bus.Dispatch(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, 2, handlerCalls)
	})

	t.Run("the key derives from payload content, not value identity", func(t *testing.T) {
		var handlerCalls int
		bus := newCachedQueryBus(time.Second, &handlerCalls)

		// Distinct values with equal content share an entry.
		_, err := bus.Dispatch(context.Background(), findQuery{data: findQueryPayload{ID: "a"}})
		require.NoError(t, err)
		_, err = bus.Dispatch(context.Background(), findQuery{data: findQueryPayload{ID: "a"}})
		require.NoError(t, err)
		assert.Equal(t, 1, handlerCalls)

		// Different content misses.
		result, err := bus.Dispatch(context.Background(), findQuery{data: findQueryPayload{ID: "b"}})
		require.NoError(t, err)
		assert.Equal(t, "value-for-b", result)
		assert.Equal(t, 2, handlerCalls)
	})

	t.Run("a handler failure is not cached", func(t *testing.T) {
		store := memcache.New()
		caching := behavior.NewQueryCaching[findQuery, findQueryPayload, string](store, time.Second, &recordingLogger{})
		var nextCalls int

		next := func(ctx context.Context) (string, error) {
			nextCalls++
			if nextCalls == 1 {
				return "", assert.AnError
			}
			return "recovered", nil
		}

		_, err := caching.Handle(context.Background(), findQuery{data: findQueryPayload{ID: "x"}}, next)
		require.Error(t, err)

		result, err := caching.Handle(context.Background(), findQuery{data: findQueryPayload{ID: "x"}}, next)
		require.NoError(t, err)
		assert.Equal(t, "recovered", result)
		assert.Equal(t, 2, nextCalls)
	})
}
