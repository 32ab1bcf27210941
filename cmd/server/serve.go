package main

import (
	"alcyxob/workout-sessions/internal/api"
	"alcyxob/workout-sessions/internal/config"
	"alcyxob/workout-sessions/internal/logging"
	"alcyxob/workout-sessions/internal/metrics"
	"alcyxob/workout-sessions/internal/notify"
	"alcyxob/workout-sessions/internal/repository/mongo"
	"alcyxob/workout-sessions/internal/service"
	"alcyxob/workout-sessions/internal/storage"
	"alcyxob/workout-sessions/internal/streak"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.Log.File,
		LogToStdout:      cfg.Log.Stdout,
		LogLevel:         cfg.Log.Level,
		LogFormatJSON:    cfg.Log.JSON,
		Environment:      cfg.Log.Environment,
		SentryEnabled:    cfg.Log.SentryDSN != "",
		SentryDSN:        cfg.Log.SentryDSN,
		SentryServerName: "workoutd",
	})

	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is required")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("connect to mongo: %w", err)
	}
	appDB := dbClient.Database(cfg.Database.Name)
	log.Infof("connected to mongo database %s", cfg.Database.Name)

	// the unique (userId, date) index backs day resolution, so startup fails without it
	indexCtx, cancelIndexes := context.WithTimeout(ctx, time.Minute)
	err = mongo.EnsureIndexes(indexCtx, appDB)
	cancelIndexes()
	if err != nil {
		return multierr.Append(fmt.Errorf("ensure indexes: %w", err), mongo.DisconnectDB(dbClient))
	}

	// --- Redis ---
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return multierr.Combine(
			fmt.Errorf("ping redis: %w", err),
			redisClient.Close(),
			mongo.DisconnectDB(dbClient),
		)
	}

	defer func() {
		err = multierr.Combine(err, redisClient.Close(), mongo.DisconnectDB(dbClient))
		if ok := sentry.Flush(2 * time.Second); !ok {
			log.Debug("sentry flush timed out")
		}
	}()

	fileStorage, err := newFileStorage(ctx, cfg.S3)
	if err != nil {
		return err
	}

	// --- Metrics ---
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsManager := metrics.NewManager("workoutd", "server", promRegistry)

	// --- Services ---
	workoutService := service.NewWorkoutService(
		mongo.NewMongoSessionRepository(appDB),
		mongo.NewMongoDayRepository(appDB),
		streak.NewRedisTracker(redisClient),
		notify.NewRedisNotifier(redisClient, cfg.Streak.ChannelPrefix),
		fileStorage,
		service.NewTemplateCache(cfg.Cache.SizeMB, cfg.Cache.TemplateTTL),
		metricsManager,
	)

	// --- HTTP ---
	if log.GetLevel() < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	err = api.SetupRoutes(router, cfg.JWT.Secret, workoutService, metricsManager, promRegistry, api.RateLimitParams{
		Limiter:         redis_rate.NewLimiter(redisClient),
		WritesPerMinute: cfg.RateLimit.WritesPerMinute,
	})
	if err != nil {
		return fmt.Errorf("setup routes: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof(" > server listening on: [%s]", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
	}

	log.Debug("graceful shutdown initiated ...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	log.Warnln("server shut down")
	return nil
}

// newFileStorage returns nil when no bucket is configured; exercise images are then served as stored.
func newFileStorage(ctx context.Context, cfg config.S3Config) (storage.FileStorage, error) {
	if !cfg.Enabled() {
		log.Info("s3 bucket not configured, exercise images are not signed")
		return nil, nil
	}
	fileStorage, err := storage.NewS3Storage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init s3 storage: %w", err)
	}
	return fileStorage, nil
}
