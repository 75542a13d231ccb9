package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-mediator/internal/busticket"
	"github.com/mateusmacedo/go-mediator/internal/busticket/application"
	"github.com/mateusmacedo/go-mediator/internal/busticket/domain"
	"github.com/mateusmacedo/go-mediator/internal/busticket/infrastructure"
	"github.com/mateusmacedo/go-mediator/internal/config"
	"github.com/mateusmacedo/go-mediator/pkg/behavior"
	pkgDomain "github.com/mateusmacedo/go-mediator/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-mediator/pkg/infrastructure"
	"github.com/mateusmacedo/go-mediator/pkg/infrastructure/memcache"
	redisAdapter "github.com/mateusmacedo/go-mediator/pkg/infrastructure/redis/adapter"
	zapAdapter "github.com/mateusmacedo/go-mediator/pkg/infrastructure/zaplogger/adapter"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.MustLoad()

	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	commandBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.ReserveBusTicketData], application.ReserveBusTicketData]()
	queryBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindBusTicketData], application.FindBusTicketData, []domain.BusTicket]()
	eventBus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[string], string](appLogger)

	var repository domain.BusTicketRepository
	if cfg.PostgresDSN != "" {
		repository, err = infrastructure.NewGormBusTicketRepository(cfg.PostgresDSN, appLogger)
		if err != nil {
			appLogger.Error(ctx, "error initializing repository", map[string]interface{}{"error": err})
			panic(err)
		}
	} else {
		repository = infrastructure.NewInMemoryBusTicketRepository()
	}

	var cacheStore behavior.CacheStore
	if cfg.RedisAddr != "" {
		cacheStore = redisAdapter.NewRedisCacheStore(redisAdapter.NewRedisClient(cfg.RedisAddr))
	} else {
		cacheStore = memcache.New()
	}

	busTicketSlice, err := busticket.NewBusTicketSlice(
		commandBus,
		queryBus,
		pkgInfra.NewUUIDGenerator(),
		appLogger,
		eventBus,
		repository,
		cacheStore,
		cfg.CacheTTL,
	)
	if err != nil {
		appLogger.Error(ctx, "error wiring bus ticket slice", map[string]interface{}{"error": err})
		panic(err)
	}

	router := chi.NewRouter()
	busTicketSlice.RegisterRoutes(router)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		appLogger.Info(ctx, "signal received", map[string]interface{}{"signal": sig.String()})
		cancel()
	}()

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		appLogger.Info(ctx, "server starting on "+cfg.HTTPAddr, nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error(ctx, "error starting server", map[string]interface{}{"error": err})
		}
	}()

	<-ctx.Done()
	appLogger.Info(ctx, "shutting down server", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(context.Background(), "error shutting down server", map[string]interface{}{"error": err})
	}

	appLogger.Info(context.Background(), "server stopped", nil)
}
