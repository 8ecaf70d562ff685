package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/stallchain/internal/core/services"
	"github.com/SscSPs/stallchain/internal/handlers"
	"github.com/SscSPs/stallchain/internal/jobs"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/SscSPs/stallchain/internal/platform/cache"
	"github.com/SscSPs/stallchain/internal/platform/config"
	"github.com/SscSPs/stallchain/internal/platform/storage"
	"github.com/SscSPs/stallchain/internal/repositories/database/pgsql"
	"github.com/SscSPs/stallchain/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// @title Stallchain Backend API
// @version 1.0
// @description Backend for a chain of food stalls.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := runMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	probes := []handlers.Probe{{Name: "database", Check: dbPool.Ping}}
	repos := pgsql.NewRepositoryProvider(dbPool)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		repos.DeliveryZoneRepo = cache.NewZoneRepository(repos.DeliveryZoneRepo, redisClient, cfg.ZoneCacheTTL)
		probes = append(probes, handlers.Probe{Name: "redis", Check: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}})
	} else {
		logger.Warn("REDIS_URL not set: zone cache, shared rate limits and notifications are disabled")
	}

	opts := []services.Option{services.WithClock(func() time.Time { return time.Now().In(cfg.Location) })}
	if redisClient != nil {
		queue := asynq.NewClientFromRedisClient(redisClient)
		opts = append(opts, services.WithNotifier(jobs.NewMailNotifier(queue, cfg.NotifyEmail, cfg.Location)))
	}

	var expenseOpts []services.ExpenseOption
	if cfg.S3.Enabled() {
		receipts, err := storage.NewS3ReceiptStorage(ctx, cfg.S3)
		if err != nil {
			return err
		}
		expenseOpts = append(expenseOpts, services.WithReceiptStorage(receipts))
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, expenseOpts, opts...)

	if err := handlers.RegisterValidators(); err != nil {
		return err
	}
	authLimiter, err := middleware.NewLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, authLimiter, probes...)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
