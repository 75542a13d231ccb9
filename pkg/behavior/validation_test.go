package behavior_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/behavior"
	"github.com/mateusmacedo/go-mediator/pkg/infrastructure"
)

type reservePayload struct {
	PassengerName string `validate:"required"`
	SeatNumber    int    `validate:"required,gt=0"`
}

type reserveCommand struct {
	data reservePayload
}

func (c reserveCommand) CommandName() string     { return "Reserve" }
func (c reserveCommand) Payload() reservePayload { return c.data }

func TestCommandValidation(t *testing.T) {
	t.Run("a violation short-circuits before the handler", func(t *testing.T) {
		var handlerCalls int
		bus := infrastructure.NewSimpleCommandBus[reserveCommand, reservePayload]()
		bus.Use(behavior.NewCommandValidation[reserveCommand, reservePayload](validator.New()))
		require.NoError(t, bus.RegisterHandler("Reserve", application.CommandHandlerFunc[reserveCommand, reservePayload](func(ctx context.Context, command reserveCommand) error {
			handlerCalls++
			return nil
		})))

		err := bus.Dispatch(context.Background(), reserveCommand{data: reservePayload{SeatNumber: 3}})

		var validationErr *behavior.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Reserve", validationErr.RequestName)
		require.Len(t, validationErr.Violations, 1)
		assert.Equal(t, "PassengerName", validationErr.Violations[0].Field)
		assert.Equal(t, "required", validationErr.Violations[0].Rule)
		assert.Zero(t, handlerCalls)
	})

	t.Run("violations are aggregated", func(t *testing.T) {
		validation := behavior.NewCommandValidation[reserveCommand, reservePayload](validator.New())

		err := validation.Handle(context.Background(), reserveCommand{}, func(ctx context.Context) error {
			t.Fatal("next must not be called")
			return nil
		})

		var validationErr *behavior.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Violations, 2)
	})

	t.Run("a valid payload calls next exactly once", func(t *testing.T) {
		validation := behavior.NewCommandValidation[reserveCommand, reservePayload](validator.New())
		var nextCalls int

		err := validation.Handle(context.Background(), reserveCommand{data: reservePayload{PassengerName: "John", SeatNumber: 1}}, func(ctx context.Context) error {
			nextCalls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, nextCalls)
	})

	t.Run("custom rules run alongside struct rules", func(t *testing.T) {
		noWindowSeats := func(ctx context.Context, payload reservePayload) []behavior.Violation {
			if payload.SeatNumber%2 == 0 {
				return []behavior.Violation{{Field: "SeatNumber", Rule: "no-window-seat", Message: "window seats are not reservable"}}
			}
			return nil
		}
		validation := behavior.NewCommandValidation[reserveCommand, reservePayload](validator.New(), noWindowSeats)

		err := validation.Handle(context.Background(), reserveCommand{data: reservePayload{PassengerName: "John", SeatNumber: 2}}, func(ctx context.Context) error {
			t.Fatal("next must not be called")
			return nil
		})

		var validationErr *behavior.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Violations, 1)
		assert.Equal(t, "no-window-seat", validationErr.Violations[0].Rule)
	})
}

func TestQueryValidation(t *testing.T) {
	t.Run("a violation short-circuits with a zero result", func(t *testing.T) {
		validation := behavior.NewQueryValidation[findQuery, findQueryPayload, string](validator.New())

		result, err := validation.Handle(context.Background(), findQuery{}, func(ctx context.Context) (string, error) {
			t.Fatal("next must not be called")
			return "", nil
		})

		var validationErr *behavior.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Empty(t, result)
	})
}
