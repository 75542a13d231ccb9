package behavior

import (
	"context"
	"time"

	"github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

// commandTiming measures wall-clock time around the rest of the chain and
// emits one record per dispatch. It calls next exactly once and never alters
// the outcome, success or failure.
type commandTiming[C domain.Command[D], D any] struct {
	logger application.AppLogger
}

func NewCommandTiming[C domain.Command[D], D any](logger application.AppLogger) application.CommandBehavior[C, D] {
	return &commandTiming[C, D]{logger: logger}
}

func (b *commandTiming[C, D]) Handle(ctx context.Context, command C, next application.CommandNext) error {
	start := time.Now()
	err := next(ctx)
	b.logger.Info(ctx, "request timed", map[string]interface{}{
		"request_name": command.CommandName(),
		"elapsed":      time.Since(start),
	})
	return err
}

type queryTiming[Q domain.Query[D], D any, R any] struct {
	logger application.AppLogger
}

func NewQueryTiming[Q domain.Query[D], D any, R any](logger application.AppLogger) application.QueryBehavior[Q, D, R] {
	return &queryTiming[Q, D, R]{logger: logger}
}

func (b *queryTiming[Q, D, R]) Handle(ctx context.Context, query Q, next application.QueryNext[R]) (R, error) {
	start := time.Now()
	result, err := next(ctx)
	b.logger.Info(ctx, "request timed", map[string]interface{}{
		"request_name": query.QueryName(),
		"elapsed":      time.Since(start),
	})
	return result, err
}
