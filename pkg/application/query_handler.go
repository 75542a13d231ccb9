package application

import (
	"context"

	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

// QueryHandler is the single unit of business logic bound to one query name,
// producing a result of type R.
type QueryHandler[Q domain.Query[T], T any, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// QueryHandlerFunc adapts a plain function to QueryHandler.
type QueryHandlerFunc[Q domain.Query[T], T any, R any] func(ctx context.Context, query Q) (R, error)

func (f QueryHandlerFunc[Q, T, R]) Handle(ctx context.Context, query Q) (R, error) {
	return f(ctx, query)
}

// QueryBus dispatches queries to their registered handler, routing every
// dispatch through the behavior chain configured with Use.
type QueryBus[Q domain.Query[D], D any, R any] interface {
	// RegisterHandler binds a handler to a query name. Registering a second
	// handler for the same name is an error.
	RegisterHandler(queryName string, handler QueryHandler[Q, D, R]) error
	// Use appends behaviors to the dispatch chain. The first behavior added
	// is the outermost wrapper; the bus never reorders or deduplicates.
	Use(behaviors ...QueryBehavior[Q, D, R])
	// Dispatch resolves the handler for the query's name and invokes it
	// through the behavior chain, returning the handler's result.
	Dispatch(ctx context.Context, query Q) (R, error)
}
