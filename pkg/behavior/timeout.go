package behavior

import (
	"context"
	"fmt"
	"time"

	"github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

// commandTimeout races the rest of the chain against a deadline. next is
// called exactly once, on a separate goroutine; if the deadline wins, the
// dispatch fails with a deadline error while the abandoned chain observes the
// cancelled context.
type commandTimeout[C domain.Command[D], D any] struct {
	timeout time.Duration
}

func NewCommandTimeout[C domain.Command[D], D any](timeout time.Duration) application.CommandBehavior[C, D] {
	return &commandTimeout[C, D]{timeout: timeout}
}

func (b *commandTimeout[C, D]) Handle(ctx context.Context, command C, next application.CommandNext) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- next(ctx)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("request %q timed out: %w", command.CommandName(), ctx.Err())
	}
}

type queryTimeout[Q domain.Query[D], D any, R any] struct {
	timeout time.Duration
}

func NewQueryTimeout[Q domain.Query[D], D any, R any](timeout time.Duration) application.QueryBehavior[Q, D, R] {
	return &queryTimeout[Q, D, R]{timeout: timeout}
}

func (b *queryTimeout[Q, D, R]) Handle(ctx context.Context, query Q, next application.QueryNext[R]) (R, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	type outcome struct {
		result R
		err    error
	}
	resultChan := make(chan outcome, 1)
	go func() {
		result, err := next(ctx)
		resultChan <- outcome{result: result, err: err}
	}()

	select {
	case out := <-resultChan:
		return out.result, out.err
	case <-ctx.Done():
		var zero R
		return zero, fmt.Errorf("request %q timed out: %w", query.QueryName(), ctx.Err())
	}
}
