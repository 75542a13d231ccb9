package infrastructure

import (
	"context"
	"sync"

	"github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

type simpleQueryBus[Q domain.Query[D], D any, R any] struct {
	handlers  map[string]application.QueryHandler[Q, D, R]
	behaviors []application.QueryBehavior[Q, D, R]
	mu        sync.RWMutex
}

// NewSimpleQueryBus creates an in-process query bus for queries with payload
// D and result R.
func NewSimpleQueryBus[Q domain.Query[D], D any, R any]() application.QueryBus[Q, D, R] {
	return &simpleQueryBus[Q, D, R]{
		handlers: make(map[string]application.QueryHandler[Q, D, R]),
	}
}

func (bus *simpleQueryBus[Q, D, R]) RegisterHandler(queryName string, handler application.QueryHandler[Q, D, R]) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	if _, exists := bus.handlers[queryName]; exists {
		return &DuplicateHandlerError{RequestName: queryName}
	}
	bus.handlers[queryName] = handler
	return nil
}

func (bus *simpleQueryBus[Q, D, R]) Use(behaviors ...application.QueryBehavior[Q, D, R]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.behaviors = append(bus.behaviors, behaviors...)
}

func (bus *simpleQueryBus[Q, D, R]) Dispatch(ctx context.Context, query Q) (R, error) {
	bus.mu.RLock()
	handler, found := bus.handlers[query.QueryName()]
	behaviors := make([]application.QueryBehavior[Q, D, R], len(bus.behaviors))
	copy(behaviors, bus.behaviors)
	bus.mu.RUnlock()

	if !found {
		var zero R
		return zero, &HandlerNotFoundError{RequestName: query.QueryName()}
	}

	terminal := func(ctx context.Context) (R, error) {
		return handler.Handle(ctx, query)
	}

	return ChainQuery[Q, D, R](query, behaviors, terminal)(ctx)
}
