package infrastructure

import (
	"context"
	"sync"

	"github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

type simpleCommandBus[C domain.Command[D], D any] struct {
	handlers  map[string]application.CommandHandler[C, D]
	behaviors []application.CommandBehavior[C, D]
	mu        sync.RWMutex
}

// NewSimpleCommandBus creates an in-process command bus. Dispatch runs on the
// caller's goroutine; the bus holds no per-dispatch state, so concurrent
// dispatches are independent.
func NewSimpleCommandBus[C domain.Command[D], D any]() application.CommandBus[C, D] {
	return &simpleCommandBus[C, D]{
		handlers: make(map[string]application.CommandHandler[C, D]),
	}
}

func (bus *simpleCommandBus[C, D]) RegisterHandler(commandName string, handler application.CommandHandler[C, D]) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	if _, exists := bus.handlers[commandName]; exists {
		return &DuplicateHandlerError{RequestName: commandName}
	}
	bus.handlers[commandName] = handler
	return nil
}

func (bus *simpleCommandBus[C, D]) Use(behaviors ...application.CommandBehavior[C, D]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.behaviors = append(bus.behaviors, behaviors...)
}

func (bus *simpleCommandBus[C, D]) Dispatch(ctx context.Context, command C) error {
	bus.mu.RLock()
	handler, found := bus.handlers[command.CommandName()]
	behaviors := make([]application.CommandBehavior[C, D], len(bus.behaviors))
	copy(behaviors, bus.behaviors)
	bus.mu.RUnlock()

	if !found {
		return &HandlerNotFoundError{RequestName: command.CommandName()}
	}

	terminal := func(ctx context.Context) error {
		return handler.Handle(ctx, command)
	}

	return ChainCommand[C, D](command, behaviors, terminal)(ctx)
}
