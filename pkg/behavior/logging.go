package behavior

import (
	"context"

	"github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

// commandFailureLogging calls next exactly once and, when the rest of the
// chain fails, emits one error record naming the request before returning the
// identical error. It never swallows or replaces a failure.
type commandFailureLogging[C domain.Command[D], D any] struct {
	logger application.AppLogger
}

func NewCommandFailureLogging[C domain.Command[D], D any](logger application.AppLogger) application.CommandBehavior[C, D] {
	return &commandFailureLogging[C, D]{logger: logger}
}

func (b *commandFailureLogging[C, D]) Handle(ctx context.Context, command C, next application.CommandNext) error {
	err := next(ctx)
	if err != nil {
		application.LogError(ctx, b.logger, "request failed", err, map[string]interface{}{
			"request_name": command.CommandName(),
		})
	}
	return err
}

type queryFailureLogging[Q domain.Query[D], D any, R any] struct {
	logger application.AppLogger
}

func NewQueryFailureLogging[Q domain.Query[D], D any, R any](logger application.AppLogger) application.QueryBehavior[Q, D, R] {
	return &queryFailureLogging[Q, D, R]{logger: logger}
}

func (b *queryFailureLogging[Q, D, R]) Handle(ctx context.Context, query Q, next application.QueryNext[R]) (R, error) {
	result, err := next(ctx)
	if err != nil {
		application.LogError(ctx, b.logger, "request failed", err, map[string]interface{}{
			"request_name": query.QueryName(),
		})
	}
	return result, err
}
