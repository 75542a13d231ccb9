package behavior

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

// Violation is a single failed validation rule.
type Violation struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError aggregates every violation found for one request. The
// handler is never invoked when this error is returned.
type ValidationError struct {
	RequestName string
	Violations  []Violation
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		messages[i] = v.Message
	}
	return fmt.Sprintf("validation failed for request %q: %s", e.RequestName, strings.Join(messages, "; "))
}

// Rule is a custom validation predicate over a request payload, run in
// addition to the struct-tag rules.
type Rule[D any] func(ctx context.Context, payload D) []Violation

// check runs struct-tag validation followed by custom rules, collecting all
// violations. Non-struct payloads skip the struct-tag pass.
func check[D any](ctx context.Context, validate *validator.Validate, rules []Rule[D], payload D) []Violation {
	var violations []Violation

	if validate != nil {
		if err := validate.StructCtx(ctx, payload); err != nil {
			var fieldErrs validator.ValidationErrors
			var invalid *validator.InvalidValidationError
			switch {
			case errors.As(err, &fieldErrs):
				for _, fe := range fieldErrs {
					violations = append(violations, Violation{
						Field:   fe.Field(),
						Rule:    fe.Tag(),
						Message: fe.Error(),
					})
				}
			case errors.As(err, &invalid):
				// Payload is not a struct; only custom rules apply.
			default:
				violations = append(violations, Violation{Rule: "struct", Message: err.Error()})
			}
		}
	}

	for _, rule := range rules {
		violations = append(violations, rule(ctx, payload)...)
	}

	return violations
}

// commandValidation runs registered validators against the command payload
// before calling next. Any violation short-circuits the chain: next is never
// called and a ValidationError carrying every violation is returned.
type commandValidation[C domain.Command[D], D any] struct {
	validate *validator.Validate
	rules    []Rule[D]
}

func NewCommandValidation[C domain.Command[D], D any](validate *validator.Validate, rules ...Rule[D]) application.CommandBehavior[C, D] {
	return &commandValidation[C, D]{validate: validate, rules: rules}
}

func (b *commandValidation[C, D]) Handle(ctx context.Context, command C, next application.CommandNext) error {
	if violations := check(ctx, b.validate, b.rules, command.Payload()); len(violations) > 0 {
		return &ValidationError{RequestName: command.CommandName(), Violations: violations}
	}
	return next(ctx)
}

type queryValidation[Q domain.Query[D], D any, R any] struct {
	validate *validator.Validate
	rules    []Rule[D]
}

func NewQueryValidation[Q domain.Query[D], D any, R any](validate *validator.Validate, rules ...Rule[D]) application.QueryBehavior[Q, D, R] {
	return &queryValidation[Q, D, R]{validate: validate, rules: rules}
}

func (b *queryValidation[Q, D, R]) Handle(ctx context.Context, query Q, next application.QueryNext[R]) (R, error) {
	if violations := check(ctx, b.validate, b.rules, query.Payload()); len(violations) > 0 {
		var zero R
		return zero, &ValidationError{RequestName: query.QueryName(), Violations: violations}
	}
	return next(ctx)
}
