package infrastructure

import (
	"context"
	"errors"
	"sync"

	"github.com/mateusmacedo/go-mediator/internal/busticket/domain"
)

type InMemoryBusTicketRepository struct {
	mu   sync.RWMutex
	data map[string]domain.BusTicket
}

func NewInMemoryBusTicketRepository() *InMemoryBusTicketRepository {
	return &InMemoryBusTicketRepository{
		data: make(map[string]domain.BusTicket),
	}
}

func (r *InMemoryBusTicketRepository) Save(ctx context.Context, busTicket domain.BusTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[busTicket.ID]; exists {
		return errors.New("busTicket already exists")
	}
	r.data[busTicket.ID] = busTicket

	return nil
}

func (r *InMemoryBusTicketRepository) FindByPassengerName(ctx context.Context, passengerName string) ([]domain.BusTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var busTickets []domain.BusTicket
	for _, busTicket := range r.data {
		if busTicket.PassengerName == passengerName {
			busTickets = append(busTickets, busTicket)
		}
	}

	return busTickets, nil
}

func (r *InMemoryBusTicketRepository) Update(ctx context.Context, busTicket domain.BusTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[busTicket.ID]; !exists {
		return errors.New("busTicket not found")
	}
	r.data[busTicket.ID] = busTicket

	return nil
}
