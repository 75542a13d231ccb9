package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-mediator/internal/busticket/domain"
)

func ticket(id, passenger string) domain.BusTicket {
	return domain.BusTicket{
		ID:            id,
		PassengerName: passenger,
		DepartureTime: time.Now().Add(24 * time.Hour),
		SeatNumber:    7,
		Origin:        "City A",
		Destination:   "City B",
	}
}

func TestInMemoryBusTicketRepository(t *testing.T) {
	t.Run("saves and finds by passenger name", func(t *testing.T) {
		repo := NewInMemoryBusTicketRepository()
		require.NoError(t, repo.Save(context.Background(), ticket("1", "John")))
		require.NoError(t, repo.Save(context.Background(), ticket("2", "John")))
		require.NoError(t, repo.Save(context.Background(), ticket("3", "Jane")))

		found, err := repo.FindByPassengerName(context.Background(), "John")

		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("rejects a duplicate id", func(t *testing.T) {
		repo := NewInMemoryBusTicketRepository()
		require.NoError(t, repo.Save(context.Background(), ticket("1", "John")))

		assert.Error(t, repo.Save(context.Background(), ticket("1", "John")))
	})

	t.Run("updates an existing ticket", func(t *testing.T) {
		repo := NewInMemoryBusTicketRepository()
		require.NoError(t, repo.Save(context.Background(), ticket("1", "John")))

		updated := ticket("1", "John")
		updated.SeatNumber = 21
		require.NoError(t, repo.Update(context.Background(), updated))

		found, err := repo.FindByPassengerName(context.Background(), "John")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, 21, found[0].SeatNumber)
	})

	t.Run("updating an unknown ticket fails", func(t *testing.T) {
		repo := NewInMemoryBusTicketRepository()

		assert.Error(t, repo.Update(context.Background(), ticket("missing", "John")))
	})
}
