package application

import (
	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

type busTicketBookedEvent struct {
	message string
}

func (e busTicketBookedEvent) EventName() string {
	return "BusTicketBooked"
}

func (e busTicketBookedEvent) Payload() string {
	return e.message
}

func NewBusTicketBookedEvent(message string) domain.Event[string] {
	return busTicketBookedEvent{message: message}
}
