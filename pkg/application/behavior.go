package application

import (
	"context"

	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

// CommandNext is the continuation handed to a command behavior. It represents
// everything downstream of the behavior: the remaining behaviors and, at the
// innermost position, the handler invocation.
type CommandNext func(ctx context.Context) error

// CommandBehavior wraps the dispatch of a command. A behavior must call next
// at most once: zero times to short-circuit, once to continue the chain. It
// may inspect the command before or after calling next and may observe a
// failure surfaced by next; masking a failure should be an explicit,
// documented purpose of the behavior, never a side effect.
type CommandBehavior[C domain.Command[T], T any] interface {
	Handle(ctx context.Context, command C, next CommandNext) error
}

// CommandBehaviorFunc adapts a plain function to CommandBehavior.
type CommandBehaviorFunc[C domain.Command[T], T any] func(ctx context.Context, command C, next CommandNext) error

func (f CommandBehaviorFunc[C, T]) Handle(ctx context.Context, command C, next CommandNext) error {
	return f(ctx, command, next)
}

// QueryNext is the continuation handed to a query behavior.
type QueryNext[R any] func(ctx context.Context) (R, error)

// QueryBehavior wraps the dispatch of a query. The same at-most-one call to
// next contract as CommandBehavior applies; a query behavior may additionally
// transform or replace the result returned by next.
type QueryBehavior[Q domain.Query[D], D any, R any] interface {
	Handle(ctx context.Context, query Q, next QueryNext[R]) (R, error)
}

// QueryBehaviorFunc adapts a plain function to QueryBehavior.
type QueryBehaviorFunc[Q domain.Query[D], D any, R any] func(ctx context.Context, query Q, next QueryNext[R]) (R, error)

func (f QueryBehaviorFunc[Q, D, R]) Handle(ctx context.Context, query Q, next QueryNext[R]) (R, error) {
	return f(ctx, query, next)
}
