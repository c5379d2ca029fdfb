package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"food-delivery-service/internal/config"
	"food-delivery-service/internal/delivery/http/handler"
	"food-delivery-service/internal/domain/entities"
	"food-delivery-service/internal/infrastructure/logger"
	"food-delivery-service/internal/infrastructure/mongodb"
	"food-delivery-service/internal/infrastructure/nats"
	"food-delivery-service/internal/infrastructure/redis"
	"food-delivery-service/internal/usecase"
)

type App struct {
	cfg    *config.Config
	logger *logger.Logger
}

func New(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: logger.NewLogger(),
	}
}

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return New(cfg).Run()
}

func (a *App) Run() error {
	a.logger.Info("Starting food-delivery-service")

	store, err := a.initMongoDB()
	if err != nil {
		return err
	}
	defer store.Close()

	menuCache := a.initRedis()

	publisher := a.initNATS()
	if closer, ok := publisher.(interface{ Close() }); ok {
		defer closer.Close()
	}

	restaurantRepo := mongodb.NewRestaurantRepository(store)
	menuRepo := mongodb.NewMenuItemRepository(store)
	orderRepo := mongodb.NewOrderRepository(store)

	catalog := usecase.NewCatalogUseCase(restaurantRepo, menuRepo, menuCache)
	orders := usecase.NewOrderUseCase(restaurantRepo, menuRepo, orderRepo, publisher)

	h := handler.NewHandler(catalog, orders, store, a.logger)
	router := handler.NewRouter(h)

	srv := &http.Server{
		Addr:    ":" + a.cfg.HTTP.Port,
		Handler: router,
	}

	return a.runServerWithGracefulShutdown(srv)
}

func (a *App) initMongoDB() (*mongodb.Store, error) {
	a.logger.Info("Connecting to MongoDB", "db", a.cfg.Mongo.DB)

	store, err := mongodb.NewStore(a.cfg.Mongo.URI, a.cfg.Mongo.DB)
	if err != nil {
		a.logger.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	a.logger.Info("Connected to MongoDB successfully")
	return store, nil
}

func (a *App) initRedis() usecase.MenuCache {
	if a.cfg.Redis.URL == "" {
		a.logger.Info("REDIS_URL not set, menu caching disabled")
		return &noopMenuCache{}
	}

	opts, err := goredis.ParseURL(a.cfg.Redis.URL)
	if err != nil {
		a.logger.Warn("Invalid REDIS_URL, menu caching disabled", "error", err)
		return &noopMenuCache{}
	}

	client := goredis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		a.logger.Warn("Failed to connect to Redis, menu caching disabled", "error", err)
		return &noopMenuCache{}
	}

	a.logger.Info("Connected to Redis successfully")
	return redis.NewMenuCache(client, a.cfg.Redis.MenuTTL)
}

func (a *App) initNATS() usecase.EventPublisher {
	if a.cfg.NATS.URL == "" {
		a.logger.Info("NATS_URL not set, event publishing disabled")
		return &noopEventPublisher{}
	}

	publisher, err := connectToNATSWithRetry(a.cfg.NATS.URL, a.logger, 3, 2*time.Second)
	if err != nil {
		a.logger.Warn("Failed to connect to NATS, continuing without event publishing",
			"error", err,
			"url", a.cfg.NATS.URL)
		return &noopEventPublisher{}
	}

	a.logger.Info("Connected to NATS successfully")
	return publisher
}

func (a *App) runServerWithGracefulShutdown(srv *http.Server) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		a.logger.Info("Received shutdown signal, starting graceful shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			a.logger.Warn("Graceful shutdown timeout, forcing close", "error", err)
			return srv.Close()
		}

		a.logger.Info("Graceful shutdown completed")
		return nil
	}
}

func connectToNATSWithRetry(url string, logger *logger.Logger, maxRetries int, delay time.Duration) (usecase.EventPublisher, error) {
	for i := 0; i < maxRetries; i++ {
		publisher, err := nats.NewNatsPublisher(url, logger)
		if err == nil {
			return publisher, nil
		}

		logger.Warn("Failed to connect to NATS, retrying...",
			"attempt", i+1,
			"max_retries", maxRetries,
			"error", err)

		if i < maxRetries-1 {
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to NATS after %d attempts", maxRetries)
}

type noopEventPublisher struct{}

func (n *noopEventPublisher) PublishOrderPlaced(ctx context.Context, order *entities.Order) error {
	return nil
}

func (n *noopEventPublisher) Close() {
}

type noopMenuCache struct{}

func (n *noopMenuCache) Get(ctx context.Context, restaurantID string) ([]entities.MenuItem, bool) {
	return nil, false
}

func (n *noopMenuCache) Set(ctx context.Context, restaurantID string, items []entities.MenuItem) {
}

func (n *noopMenuCache) Invalidate(ctx context.Context, restaurantID string) {
}
