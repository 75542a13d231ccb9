package busticket

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mateusmacedo/go-mediator/internal/busticket/application"
	"github.com/mateusmacedo/go-mediator/internal/busticket/domain"
	"github.com/mateusmacedo/go-mediator/internal/busticket/infrastructure"
	pkgApp "github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/behavior"
	pkgDomain "github.com/mateusmacedo/go-mediator/pkg/domain"
)

type reserveCommand = pkgDomain.Command[application.ReserveBusTicketData]
type findQuery = pkgDomain.Query[application.FindBusTicketData]

type BusTicketSlice struct {
	httpHandler *infrastructure.BusTicketHTTPHandler
}

// NewBusTicketSlice registers the slice's handlers and wires the behavior
// chain onto both buses: recovery outermost, then timing, failure logging and
// validation; the query bus additionally caches results in cacheStore.
func NewBusTicketSlice(
	commandBus pkgApp.CommandBus[reserveCommand, application.ReserveBusTicketData],
	queryBus pkgApp.QueryBus[findQuery, application.FindBusTicketData, []domain.BusTicket],
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
	eventBus pkgApp.EventBus[pkgDomain.Event[string], string],
	repository domain.BusTicketRepository,
	cacheStore behavior.CacheStore,
	cacheTTL time.Duration,
) (*BusTicketSlice, error) {
	validate := validator.New()

	commandBus.Use(
		behavior.NewCommandRecovery[reserveCommand, application.ReserveBusTicketData](logger),
		behavior.NewCommandTiming[reserveCommand, application.ReserveBusTicketData](logger),
		behavior.NewCommandFailureLogging[reserveCommand, application.ReserveBusTicketData](logger),
		behavior.NewCommandValidation[reserveCommand, application.ReserveBusTicketData](validate),
	)
	queryBus.Use(
		behavior.NewQueryRecovery[findQuery, application.FindBusTicketData, []domain.BusTicket](logger),
		behavior.NewQueryTiming[findQuery, application.FindBusTicketData, []domain.BusTicket](logger),
		behavior.NewQueryFailureLogging[findQuery, application.FindBusTicketData, []domain.BusTicket](logger),
		behavior.NewQueryValidation[findQuery, application.FindBusTicketData, []domain.BusTicket](validate),
		behavior.NewQueryCaching[findQuery, application.FindBusTicketData, []domain.BusTicket](cacheStore, cacheTTL, logger),
	)

	commandHandler := application.NewReserveBusTicketHandler(eventBus, repository, idGenerator, logger)
	queryHandler := application.NewFindBusTicketHandler(repository, logger)
	eventHandler := application.NewBusTicketBookedEventHandler(logger)

	if err := commandBus.RegisterHandler("ReserveBusTicket", commandHandler); err != nil {
		return nil, err
	}
	if err := queryBus.RegisterHandler("FindBusTicket", queryHandler); err != nil {
		return nil, err
	}
	eventBus.RegisterHandler("BusTicketBooked", eventHandler)

	httpHandler := infrastructure.NewBusTicketHTTPHandler(commandBus, queryBus)

	return &BusTicketSlice{
		httpHandler: httpHandler,
	}, nil
}

func (s *BusTicketSlice) RegisterRoutes(router *chi.Mux) {
	s.httpHandler.RegisterRoutes(router)
}
