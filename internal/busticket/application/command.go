package application

import (
	"time"

	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

// ReserveBusTicketData carries the data needed to reserve a ticket. The
// validate tags feed the validation behavior on the command bus.
type ReserveBusTicketData struct {
	PassengerName string    `json:"passengerName" validate:"required"`
	DepartureTime time.Time `json:"departureTime" validate:"required"`
	SeatNumber    int       `json:"seatNumber" validate:"required,gt=0"`
	Origin        string    `json:"origin" validate:"required"`
	Destination   string    `json:"destination" validate:"required"`
}

type reserveBusTicketCommand struct {
	data ReserveBusTicketData
}

func (c reserveBusTicketCommand) CommandName() string {
	return "ReserveBusTicket"
}

func (c reserveBusTicketCommand) Payload() ReserveBusTicketData {
	return c.data
}

func NewReserveBusTicketCommand(data ReserveBusTicketData) domain.Command[ReserveBusTicketData] {
	return reserveBusTicketCommand{data: data}
}
