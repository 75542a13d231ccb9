package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-mediator/internal/busticket/application"
	"github.com/mateusmacedo/go-mediator/internal/busticket/domain"
	pkgApp "github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/behavior"
	pkgDomain "github.com/mateusmacedo/go-mediator/pkg/domain"
	"github.com/mateusmacedo/go-mediator/pkg/infrastructure"
)

type BusTicketHTTPHandler struct {
	commandBus pkgApp.CommandBus[pkgDomain.Command[application.ReserveBusTicketData], application.ReserveBusTicketData]
	queryBus   pkgApp.QueryBus[pkgDomain.Query[application.FindBusTicketData], application.FindBusTicketData, []domain.BusTicket]
}

func NewBusTicketHTTPHandler(
	commandBus pkgApp.CommandBus[pkgDomain.Command[application.ReserveBusTicketData], application.ReserveBusTicketData],
	queryBus pkgApp.QueryBus[pkgDomain.Query[application.FindBusTicketData], application.FindBusTicketData, []domain.BusTicket],
) *BusTicketHTTPHandler {
	return &BusTicketHTTPHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
	}
}

func (h *BusTicketHTTPHandler) HandleReserveBusTicket(w http.ResponseWriter, r *http.Request) {
	var data application.ReserveBusTicketData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	command := application.NewReserveBusTicketCommand(data)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.commandBus.Dispatch(ctx, command); err != nil {
		handleError(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"message": "Bus ticket reserved", "data": data}); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *BusTicketHTTPHandler) HandleFindBusTicket(w http.ResponseWriter, r *http.Request) {
	passengerName := chi.URLParam(r, "passengerName")
	query := application.NewFindBusTicketQuery(application.FindBusTicketData{
		PassengerName: passengerName,
	})

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	busTickets, err := h.queryBus.Dispatch(ctx, query)
	if err != nil {
		handleError(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(busTickets); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *BusTicketHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Post("/bustickets", h.HandleReserveBusTicket)
	router.Get("/bustickets/{passengerName}", h.HandleFindBusTicket)
}

func statusFromError(err error) int {
	var validationErr *behavior.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity
	}
	var notFoundErr *infrastructure.HandlerNotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func handleError(w http.ResponseWriter, message string, statusCode int) {
	http.Error(w, message, statusCode)
}
