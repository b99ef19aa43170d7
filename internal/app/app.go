// Package app wires the storefront's dependencies and runs the HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/nithishkannan87/AIM-FOOTWEAR/pkg/health"
	pkgkafka "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/kafka"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/cart"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/catalog"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/config"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/event"
	handler "github.com/nithishkannan87/AIM-FOOTWEAR/internal/handler/http"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/identity/local"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/profile"
	profilememory "github.com/nithishkannan87/AIM-FOOTWEAR/internal/profile/memory"
	profilepostgres "github.com/nithishkannan87/AIM-FOOTWEAR/internal/profile/postgres"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/session"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/store"
	storememory "github.com/nithishkannan87/AIM-FOOTWEAR/internal/store/memory"
	storeredis "github.com/nithishkannan87/AIM-FOOTWEAR/internal/store/redis"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/wishlist"
)

// App wires together all dependencies and runs the storefront server.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	rdb        *redis.Client
	pool       *pgxpool.Pool
	producer   *pkgkafka.Producer
	facade     *session.Facade
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
// Backends without configured addresses fall back to in-process
// implementations so the server runs standalone.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	healthHandler := health.NewHandler()

	a := &App{cfg: cfg, logger: logger}

	// Snapshot store: Redis when configured, in-memory otherwise.
	var kv store.Store
	if cfg.RedisAddr != "" {
		a.rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := a.rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis", slog.String("addr", cfg.RedisAddr))

		kv = storeredis.New(a.rdb)
		healthHandler.Register("redis", func(ctx context.Context) error {
			return a.rdb.Ping(ctx).Err()
		})
	} else {
		logger.Info("no redis configured, using in-memory snapshot store")
		kv = storememory.New()
	}

	// Profile store: Postgres when configured, in-memory otherwise.
	var profiles profile.Store
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("create postgres pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		logger.Info("connected to Postgres")

		a.pool = pool
		profiles = profilepostgres.NewStore(pool)
		healthHandler.Register("postgres", func(ctx context.Context) error {
			return pool.Ping(ctx)
		})
	} else {
		logger.Info("no postgres configured, using in-memory profile store")
		profiles = profilememory.NewStore()
	}

	// Analytics producer: optional, the containers run without one.
	var analytics *event.Producer
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		a.producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(brokers), logger)
		analytics = event.NewProducer(a.producer, logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", brokers))
	} else {
		logger.Info("no kafka brokers configured, analytics events disabled")
	}

	// Build the state containers and the session facade.
	cartContainer := cart.NewContainer(ctx, kv, analytics, logger)
	wishlistContainer := wishlist.NewContainer(ctx, kv, analytics, logger)

	provider := local.NewProvider(cfg.JWTSecret, cfg.TokenTTL, logger)
	a.facade = session.NewFacade(provider, profiles, logger)

	router := handler.NewRouter(
		catalog.Seed(),
		cartContainer,
		wishlistContainer,
		a.facade,
		provider,
		healthHandler,
		logger,
	)

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return a, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	a.facade.Close()

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		}
	}

	if a.pool != nil {
		a.pool.Close()
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("application shutdown complete")
	return nil
}
