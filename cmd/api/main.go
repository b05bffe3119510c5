// @title                       SariCare Booking API
// @version                     1.0
// @description                 Bookings, contact messages and admin oversight for SariCare.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/saricare/booking-api/internal/api"
	"github.com/saricare/booking-api/internal/api/handler"
	"github.com/saricare/booking-api/internal/api/middleware"
	"github.com/saricare/booking-api/internal/core/service"
	"github.com/saricare/booking-api/internal/infrastructure/config"
	"github.com/saricare/booking-api/internal/infrastructure/db/mongo"
	"github.com/saricare/booking-api/internal/infrastructure/db/redis"
	"github.com/saricare/booking-api/internal/infrastructure/queue"
	"github.com/saricare/booking-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log := logger.Init(logger.Options{Level: "info"})
		log.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "saricare-api",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	var (
		rdb     *goredis.Client
		limiter middleware.Limiter
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, using in-process rate limiter")
		} else {
			defer rdb.Close()
			limiter = redis.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window)
		}
	}
	if limiter == nil {
		limiter = middleware.NewMemoryLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window)
	}

	// --- Repositories ---
	users := mongo.NewUserRepository(db)
	bookings := mongo.NewBookingRepository(db)
	contacts := mongo.NewContactRepository(db)
	events := mongo.NewEventRepository(db)

	// --- Async audit trail ---
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.EventWorkers, service.NewEventService(events, log), log)
	dispatcher.Start(workerCtx)
	defer func() {
		stopWorkers()
		dispatcher.Wait()
	}()

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	bookingService := service.NewBookingService(bookings, dispatcher, log)
	seeder := service.NewAdminSeeder(users, cfg.Admin.Email, cfg.Admin.Password, log)

	if err := seeder.Ensure(ctx); err != nil {
		log.Error().Err(err).Msg("error seeding admin user")
	}

	e := api.NewRouter(api.Deps{
		Auth:        service.NewAuthService(users, tokens, log),
		Bookings:    bookingService,
		Lifecycle:   bookingService,
		Contacts:    service.NewContactService(contacts, log),
		Admin:       service.NewAdminService(users, bookings, contacts, log),
		Tokens:      tokens,
		Users:       users,
		Seeder:      seeder,
		Limiter:     limiter,
		Health:      handler.NewHealthHandler(db, rdb),
		CORSOrigins: cfg.CORSOrigins,
		Development: cfg.IsDevelopment(),
		Swagger:     !cfg.IsProduction(),
		Log:         log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server running")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
