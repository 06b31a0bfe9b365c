package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/adapters/events"
	"github.com/SscSPs/shift_cashbox_app/internal/adapters/notify"
	portsevents "github.com/SscSPs/shift_cashbox_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/shift_cashbox_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"github.com/SscSPs/shift_cashbox_app/internal/core/services"
	"github.com/SscSPs/shift_cashbox_app/internal/handlers"
	"github.com/SscSPs/shift_cashbox_app/internal/jobs"
	"github.com/SscSPs/shift_cashbox_app/internal/middleware"
	"github.com/SscSPs/shift_cashbox_app/internal/platform/config"
	"github.com/SscSPs/shift_cashbox_app/internal/platform/metrics"
	"github.com/SscSPs/shift_cashbox_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/shift_cashbox_app/internal/repositories/memory"
	"github.com/SscSPs/shift_cashbox_app/internal/utils"
	"github.com/SscSPs/shift_cashbox_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Shift Cashbox API
// @version 1.0
// @description Cash-box shifts, movements, incidents and closing reconciliation for a point of sale.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	feed, closeFeed, err := setupChangeFeed(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize change feed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeFeed()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(reg)

	container, err := services.NewServiceContainer(cfg, repos, setupDispatchers(ctx, cfg, logger), feed, recorder)
	if err != nil {
		logger.Error("Failed to create services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	retrier := jobs.NewNotificationRetrier(container.Notification, loc, cfg.NotificationRetryInterval, logger)
	if err := retrier.Start(); err != nil {
		logger.Error("Failed to start notification retrier", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer retrier.Stop()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	r, err := setupRouter(cfg, logger, container, recorder, reg, posthogClient)
	if err != nil {
		logger.Error("Failed to set up router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shut down", slog.String("error", err.Error()))
	}
}

func setupRouter(
	cfg *config.Config,
	logger *slog.Logger,
	container *portssvc.ServiceContainer,
	recorder *metrics.Recorder,
	gatherer prometheus.Gatherer,
	posthogClient *utils.PosthogClientWrapper,
) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return nil, err
		}
		r.Use(middleware.RateLimit(limiterInstance))
	}

	r.Use(middleware.PrometheusMiddleware(recorder), middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	handlers.RegisterRoutes(r, cfg, container, posthogClient, gatherer)
	return r, nil
}

// setupRepositories picks Postgres when a database URL is configured and the in-memory store otherwise.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("Using in-memory storage")
		return memory.NewRepositoryProvider(memory.New()), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		database.ClosePgxPool(dbPool)
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// setupChangeFeed fans events out over Redis when configured so every instance sees them.
func setupChangeFeed(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsevents.ChangeFeed, func(), error) {
	if cfg.RedisURL == "" {
		return events.NewHub(), func() {}, nil
	}

	feed, err := events.NewRedisFeed(ctx, cfg.RedisURL, logger)
	if err != nil {
		return nil, nil, err
	}
	go func() {
		if err := feed.Run(ctx); err != nil {
			logger.Error("Change feed stopped", slog.String("error", err.Error()))
		}
	}()
	return feed, func() {
		if err := feed.Close(); err != nil {
			logger.Warn("Error closing change feed", slog.String("error", err.Error()))
		}
	}, nil
}

func setupDispatchers(ctx context.Context, cfg *config.Config, logger *slog.Logger) []portssvc.NotificationDispatcher {
	var dispatchers []portssvc.NotificationDispatcher
	if cfg.GithubNotificationsEnabled() {
		dispatchers = append(dispatchers, notify.NewGithubWorkflowDispatcher(ctx, notify.GithubWorkflowConfig{
			Token:    cfg.GithubToken,
			Owner:    cfg.GithubOwner,
			Repo:     cfg.GithubRepo,
			Workflow: cfg.GithubWorkflow,
			Ref:      cfg.GithubRef,
		}))
	}
	if cfg.EmailNotificationsEnabled() {
		dispatchers = append(dispatchers, notify.NewEmailDispatcher(notify.EmailConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			To:       cfg.NotifyEmailTo,
		}))
	}
	if len(dispatchers) == 0 {
		logger.Warn("No notification channels configured; notifications stay pending")
	}
	return dispatchers
}
