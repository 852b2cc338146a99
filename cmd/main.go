/**
 * @description
 * This is the main entry point for the property service. It initializes all
 * components: configuration, the database pool, the Redis client, the
 * RabbitMQ producer and consumer, the repository, the core application
 * service, the cron scheduler, and the HTTP server, then wires everything
 * together and runs until a termination signal arrives.
 *
 * @dependencies
 * - log/slog, net/http: Standard Go libraries for logging and the HTTP server.
 * - github.com/jackc/pgx/v5: PostgreSQL driver.
 * - github.com/redis/go-redis/v9: Redis client for the limiter and badge cache.
 * - internal/api, internal/app, internal/config, internal/store: Internal packages.
 * - pkg/rabbitmq: RabbitMQ clients.
 */
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Sedictt/Leasely/internal/api"
	"github.com/Sedictt/Leasely/internal/app"
	"github.com/Sedictt/Leasely/internal/config"
	"github.com/Sedictt/Leasely/internal/store"
	"github.com/Sedictt/Leasely/pkg/rabbitmq"
)

func main() {
	// Load .env for local development; in deployment the environment is set
	// by the platform and the file is absent.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load application configuration from environment variables.
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Info("starting property service", "port", cfg.ServerPort)

	ctx := context.Background()

	// Establish database connection with connection pool configuration
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Error("unable to parse database URL", "error", err)
		os.Exit(1)
	}

	poolConfig.MaxConns = 50
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute

	// Disable prepared statement caching to prevent conflicts
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Error("unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbpool.Close()
	logger.Info("database connection established")

	// Redis backs the message rate limiter and the unread-badge cache. Both
	// degrade gracefully when Redis is absent, so a missing or unreachable
	// REDIS_URL is a warning, not a boot failure.
	var redisClient *redis.Client
	if strings.TrimSpace(cfg.RedisURL) != "" {
		redisOptions, parseErr := redis.ParseURL(cfg.RedisURL)
		if parseErr != nil {
			logger.Warn("redis url parse failed; rate limiting and badge cache disabled", "error", parseErr)
		} else {
			redisClient = redis.NewClient(redisOptions)
			pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
			if pingErr := redisClient.Ping(pingCtx).Err(); pingErr != nil {
				logger.Warn("redis ping failed; rate limiting and badge cache disabled", "error", pingErr)
				redisClient.Close()
				redisClient = nil
			} else {
				defer redisClient.Close()
				logger.Info("redis connection established")
			}
			cancelPing()
		}
	} else {
		logger.Warn("redis url missing; rate limiting and badge cache disabled", "env", "REDIS_URL")
	}

	// Initialize the RabbitMQ producer to publish events. Escalation and
	// renewal events are best-effort, so the no-op fallback keeps the
	// service up when the broker is unreachable.
	var producer app.Publisher
	var rabbitAvailable bool
	if strings.TrimSpace(cfg.RabbitMQURL) != "" {
		eventProducer, prodErr := rabbitmq.NewEventProducer(cfg.RabbitMQURL)
		if prodErr != nil {
			logger.Warn("rabbitmq producer unavailable; using fallback", "error", prodErr)
			producer = rabbitmq.NoopProducer{}
		} else {
			defer eventProducer.Close()
			producer = eventProducer
			rabbitAvailable = true
			logger.Info("rabbitmq producer connected")
		}
	} else {
		logger.Warn("rabbitmq url missing; event publishing disabled", "env", "RABBITMQ_URL")
		producer = rabbitmq.NoopProducer{}
	}

	// Initialize the data access layer (repository).
	repository := store.NewPostgresRepository(dbpool)

	// Initialize the core application service with its dependencies.
	opts := []app.Option{}
	if redisClient != nil {
		opts = append(opts,
			app.WithRateLimiter(app.NewRedisRateLimiter(redisClient, "")),
			app.WithBadgeCache(app.NewRedisBadgeCache(redisClient)),
		)
	}
	service := app.NewService(repository, producer, logger, cfg.EventsExchange, opts...)

	// Start the cron scheduler for the recurring jobs.
	scheduler := app.NewScheduler(service, logger, cfg)
	scheduler.Start()
	logger.Info("scheduler started")

	// Consume escalation events back into landlord notifications.
	if rabbitAvailable {
		eventHandler := app.NewNotificationEventHandler(repository)
		consumer, consErr := rabbitmq.NewConsumer(cfg.RabbitMQURL)
		if consErr != nil {
			logger.Warn("rabbitmq consumer init failed; notifications disabled", "error", consErr)
		} else {
			defer consumer.Close()
			go func() {
				if err := consumer.Consume(cfg.EventsExchange, cfg.EventsQueue, "complaint.escalated", eventHandler.HandleComplaintEscalatedEvent); err != nil {
					logger.Error("notification consumer stopped", "error", err)
				}
			}()
			logger.Info("notification consumer started", "queue", cfg.EventsQueue)
		}
	}

	// Initialize the API handlers and the router.
	handler := api.NewHandler(service)
	router := api.NewRouter(handler, cfg.SupabaseJWKSURL)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for termination signal to gracefully shut down
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}

	cronCtx := scheduler.Stop()
	<-cronCtx.Done() // Wait for in-flight jobs to finish

	logger.Info("shutdown complete")
}
