package application

import (
	"context"

	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

// CommandHandler is the single unit of business logic bound to one command
// name. Exactly one handler may be registered per name on a bus.
type CommandHandler[C domain.Command[T], T any] interface {
	Handle(ctx context.Context, command C) error
}

// CommandHandlerFunc adapts a plain function to CommandHandler.
type CommandHandlerFunc[C domain.Command[T], T any] func(ctx context.Context, command C) error

func (f CommandHandlerFunc[C, T]) Handle(ctx context.Context, command C) error {
	return f(ctx, command)
}

// CommandBus dispatches commands to their registered handler, routing every
// dispatch through the behavior chain configured with Use.
type CommandBus[C domain.Command[T], T any] interface {
	// RegisterHandler binds a handler to a command name. Registering a second
	// handler for the same name is an error.
	RegisterHandler(commandName string, handler CommandHandler[C, T]) error
	// Use appends behaviors to the dispatch chain. The first behavior added
	// is the outermost wrapper; the bus never reorders or deduplicates.
	Use(behaviors ...CommandBehavior[C, T])
	// Dispatch resolves the handler for the command's name and invokes it
	// through the behavior chain.
	Dispatch(ctx context.Context, command C) error
}
