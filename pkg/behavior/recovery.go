package behavior

import (
	"context"
	"fmt"

	"github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

// commandRecovery converts a panic anywhere downstream into an error so a
// misbehaving handler cannot take the caller down with it.
type commandRecovery[C domain.Command[D], D any] struct {
	logger application.AppLogger
}

func NewCommandRecovery[C domain.Command[D], D any](logger application.AppLogger) application.CommandBehavior[C, D] {
	return &commandRecovery[C, D]{logger: logger}
}

func (b *commandRecovery[C, D]) Handle(ctx context.Context, command C, next application.CommandNext) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic handling request %q: %v", command.CommandName(), r)
			b.logger.Error(ctx, "panic recovered", map[string]interface{}{
				"request_name": command.CommandName(),
				"panic":        r,
			})
		}
	}()
	return next(ctx)
}

type queryRecovery[Q domain.Query[D], D any, R any] struct {
	logger application.AppLogger
}

func NewQueryRecovery[Q domain.Query[D], D any, R any](logger application.AppLogger) application.QueryBehavior[Q, D, R] {
	return &queryRecovery[Q, D, R]{logger: logger}
}

func (b *queryRecovery[Q, D, R]) Handle(ctx context.Context, query Q, next application.QueryNext[R]) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			result = zero
			err = fmt.Errorf("panic handling request %q: %v", query.QueryName(), r)
			b.logger.Error(ctx, "panic recovered", map[string]interface{}{
				"request_name": query.QueryName(),
				"panic":        r,
			})
		}
	}()
	return next(ctx)
}
