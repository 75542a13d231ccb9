package infrastructure

import (
	"context"

	"github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

// ChainCommand folds behaviors around a terminal step, last-added first, so
// that the first behavior in the slice becomes the outermost wrapper: it runs
// first on the way in and last on the way out. Reversing this order would
// silently change cross-cutting semantics (timing would measure only inner
// behaviors instead of the whole chain), so the fold direction is load-bearing.
//
// With zero behaviors the terminal step is returned as-is. Chains are pure
// values: composing the same inputs twice yields two independently invocable
// chains.
func ChainCommand[C domain.Command[D], D any](command C, behaviors []application.CommandBehavior[C, D], terminal application.CommandNext) application.CommandNext {
	next := terminal
	for i := len(behaviors) - 1; i >= 0; i-- {
		behavior, inner := behaviors[i], next
		next = func(ctx context.Context) error {
			return behavior.Handle(ctx, command, inner)
		}
	}
	return next
}

// ChainQuery is ChainCommand for queries, threading the result type through
// the continuation.
func ChainQuery[Q domain.Query[D], D any, R any](query Q, behaviors []application.QueryBehavior[Q, D, R], terminal application.QueryNext[R]) application.QueryNext[R] {
	next := terminal
	for i := len(behaviors) - 1; i >= 0; i-- {
		behavior, inner := behaviors[i], next
		next = func(ctx context.Context) (R, error) {
			return behavior.Handle(ctx, query, inner)
		}
	}
	return next
}
