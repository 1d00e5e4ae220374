// Package app wires configuration, stores, mail and the HTTP router into a
// runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/omsorgsplus/booking-api/internal/api"
	"github.com/omsorgsplus/booking-api/internal/api/handler"
	"github.com/omsorgsplus/booking-api/internal/api/middleware"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
	"github.com/omsorgsplus/booking-api/internal/core/service"
	mongodb "github.com/omsorgsplus/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/omsorgsplus/booking-api/internal/infrastructure/db/redis"
	"github.com/omsorgsplus/booking-api/internal/infrastructure/mail"
	"github.com/omsorgsplus/booking-api/internal/pkg/config"
)

const (
	shutdownTimeout = 10 * time.Second
	warmUpTimeout   = 10 * time.Second
)

type App struct {
	cfg      *config.Config
	logger   zerolog.Logger
	mongo    *mongo.Client
	redis    *goredis.Client
	bookings *mongodb.BookingRepository
	server   *echo.Echo
}

// New connects the stores and builds the router. MongoDB is only required
// to answer at this point when MONGO_STRICT is set; otherwise the driver
// keeps retrying in the background and requests fail until it is reachable.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Verify:   cfg.Mongo.Strict,
	})
	if err != nil {
		return nil, fmt.Errorf("mongodb init failed: %w", err)
	}
	logger.Info().Str("database", cfg.Mongo.Database).Bool("strict", cfg.Mongo.Strict).Msg("mongodb client initialized")

	a := &App{cfg: cfg, logger: logger, mongo: mongoClient}

	health := map[string]handler.Pinger{"mongodb": mongodb.NewPinger(mongoClient)}

	if cfg.Redis.Enabled {
		rc, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, using in-memory rate limiting")
		} else {
			a.redis = rc
			health["redis"] = redisdb.NewPinger(rc)
			logger.Info().Str("addr", cfg.Redis.Addr).Msg("redis client initialized")
		}
	}

	mailer, err := newMailer(cfg, logger)
	if err != nil {
		a.close()
		return nil, err
	}

	staffRepo := mongodb.NewStaffRepository(db)
	a.bookings = mongodb.NewBookingRepository(db)

	notifications := service.NewNotifications(cfg.OperatorAddress(), cfg.Location())

	a.server = api.NewRouter(api.Dependencies{
		Staff:          service.NewStaffService(staffRepo, logger),
		Bookings:       service.NewBookingService(a.bookings, mailer, notifications, logger),
		Contact:        service.NewContactService(mailer, notifications, logger),
		Health:         health,
		Location:       cfg.Location(),
		StaticDir:      cfg.StaticDir,
		AllowedOrigins: cfg.AllowedOrigins(),
		AdminSecret:    cfg.AdminJWTSecret,
		ForceHTTPS:     cfg.ForceHTTPS,
		TrustProxy:     cfg.TrustProxy,
		BodyLimit:      cfg.BodyLimit,
		RateLimitStore: a.rateLimitStore(),
		Logger:         logger,
	})

	return a, nil
}

// newMailer picks SMTP when a relay host is configured and the logging
// mailer otherwise.
func newMailer(cfg *config.Config, logger zerolog.Logger) (ports.Mailer, error) {
	if cfg.Mail.Host == "" {
		logger.Warn().Msg("MAIL_HOST not set, notifications will only be logged")
		return mail.NewLogMailer(logger), nil
	}

	m, err := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		FromName: cfg.Mail.FromName,
		Timeout:  cfg.Mail.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("mailer init failed: %w", err)
	}
	logger.Info().Str("host", cfg.Mail.Host).Int("port", cfg.Mail.Port).Str("operator", cfg.OperatorAddress()).Msg("smtp mailer initialized")
	return m, nil
}

func (a *App) rateLimitStore() echomiddleware.RateLimiterStore {
	rl := a.cfg.RateLimit
	if !rl.Enabled {
		return nil
	}
	if a.redis != nil {
		return redisdb.NewRateLimitStore(a.redis, rl.Requests, rl.Window, a.logger)
	}
	return middleware.NewMemoryStore(rl.Requests, rl.Window)
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.server
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully and closes the store clients.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := ":" + a.cfg.Port
		a.logger.Info().Str("addr", addr).Str("env", a.cfg.Env).Msg("http server starting")
		if err := a.server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.warmUp(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn().Err(err).Msg("graceful shutdown deadline exceeded")
		}
		return nil
	})

	err := g.Wait()
	a.close()
	if err == nil {
		a.logger.Info().Msg("graceful shutdown completed")
	}
	return err
}

// warmUp reports store reachability once and creates indexes. Failures are
// logged only; the readiness probe keeps reporting the live state.
func (a *App) warmUp(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, warmUpTimeout)
	defer cancel()

	if err := a.mongo.Ping(ctx, nil); err != nil {
		a.logger.Warn().Err(err).Msg("mongodb not reachable yet, serving anyway")
		return
	}
	a.logger.Info().Msg("mongodb reachable")

	if err := a.bookings.EnsureIndexes(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("failed to ensure booking indexes")
	}
}

func (a *App) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis close error")
		}
	}
	if a.mongo != nil {
		if err := a.mongo.Disconnect(ctx); err != nil {
			a.logger.Error().Err(err).Msg("mongodb disconnect error")
		}
	}
}
