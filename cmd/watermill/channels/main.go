package main

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/mateusmacedo/go-mediator/internal/busticket"
	"github.com/mateusmacedo/go-mediator/internal/busticket/application"
	"github.com/mateusmacedo/go-mediator/internal/busticket/domain"
	"github.com/mateusmacedo/go-mediator/internal/busticket/infrastructure"
	pkgDomain "github.com/mateusmacedo/go-mediator/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-mediator/pkg/infrastructure"
	"github.com/mateusmacedo/go-mediator/pkg/infrastructure/channels/adapter"
	"github.com/mateusmacedo/go-mediator/pkg/infrastructure/memcache"
	watermillLogAdapter "github.com/mateusmacedo/go-mediator/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-mediator/pkg/infrastructure/zaplogger/adapter"
)

// Demo wiring the event bus through watermill's in-process gochannel pub/sub
// while commands and queries dispatch synchronously through the behavior
// pipeline.
func main() {
	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	logger := watermillLogAdapter.NewWatermillLoggerAdapter(appLogger)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)

	commandBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.ReserveBusTicketData], application.ReserveBusTicketData]()
	queryBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindBusTicketData], application.FindBusTicketData, []domain.BusTicket]()
	eventBus := adapter.NewWatermillEventBus[pkgDomain.Event[string], string](pubSub, appLogger)

	repository := infrastructure.NewInMemoryBusTicketRepository()

	if _, err := busticket.NewBusTicketSlice(
		commandBus,
		queryBus,
		pkgInfra.NewUUIDGenerator(),
		appLogger,
		eventBus,
		repository,
		memcache.New(),
		30*time.Second,
	); err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reserveData := application.ReserveBusTicketData{
		PassengerName: "John Doe",
		DepartureTime: time.Now().Add(24 * time.Hour).Truncate(time.Second),
		SeatNumber:    12,
		Origin:        "City A",
		Destination:   "City B",
	}
	command := application.NewReserveBusTicketCommand(reserveData)

	if err := commandBus.Dispatch(ctx, command); err != nil {
		appLogger.Error(ctx, "error dispatching reserve command", map[string]interface{}{"error": err})
		return
	}
	appLogger.Info(ctx, "reserve command dispatched", nil)

	query := application.NewFindBusTicketQuery(application.FindBusTicketData{
		PassengerName: reserveData.PassengerName,
	})

	busTickets, err := queryBus.Dispatch(ctx, query)
	if err != nil {
		appLogger.Error(ctx, "error dispatching find query", map[string]interface{}{"error": err})
		return
	}
	appLogger.Info(ctx, "find query dispatched", map[string]interface{}{"bus_tickets": busTickets})

	// Second dispatch within the TTL is served from the cache.
	if _, err := queryBus.Dispatch(ctx, query); err != nil {
		appLogger.Error(ctx, "error dispatching cached query", map[string]interface{}{"error": err})
	}
}
