package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/kikiarya/hsc-planner/internal/adapter/postgres"
	selectionrepo "github.com/kikiarya/hsc-planner/internal/adapter/postgres/selection"
	subjectrepo "github.com/kikiarya/hsc-planner/internal/adapter/postgres/subject"
	"github.com/kikiarya/hsc-planner/internal/auth"
	"github.com/kikiarya/hsc-planner/internal/config"
	"github.com/kikiarya/hsc-planner/internal/service/selection"
	"github.com/kikiarya/hsc-planner/internal/transport/middleware"
	"github.com/kikiarya/hsc-planner/internal/transport/rest"
)

const rateLimitCleanup = time.Minute

// Run starts the selection store API and blocks until ctx is cancelled or
// the listener fails. Shutdown drains in-flight requests for at most
// server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, stopHandler := NewHandler(cfg, pool, logger)
	defer stopHandler()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			srv.Close() //nolint:errcheck
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("application stopped")
	return err
}

// NewHandler wires repositories, the selection service and the middleware
// chain over pool. The returned func releases background resources.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func()) {
	svc := selection.NewService(
		logger,
		selectionrepo.New(pool),
		subjectrepo.New(pool),
		postgres.NewTxManager(pool),
		cfg.Selection.MaxSelectionsPerUser,
	)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(rateLimitCleanup)

	router := rest.NewRouter(
		rest.NewHealthHandler(BuildVersion(), rest.Check{Name: "database", Ping: pool.Ping}),
		rest.NewSelectionHandler(svc, logger),
		limiter.Limit(cfg.Server.WritesPerMinute),
	)
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
	)(router)

	return handler, limiter.Stop
}

func migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	applied, err := m.Up(ctx)
	if err != nil {
		return err
	}
	logger.Info("migrations applied", slog.Int("count", applied))
	return nil
}
