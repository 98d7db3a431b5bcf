package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	comicHTTP "github.com/franvila/comic-commerce/internal/comic/delivery/http"
	comicRepo "github.com/franvila/comic-commerce/internal/comic/repository"
	"github.com/franvila/comic-commerce/internal/middleware"
	userHTTP "github.com/franvila/comic-commerce/internal/user/delivery/http"
	userRepo "github.com/franvila/comic-commerce/internal/user/repository"
	wishlistHTTP "github.com/franvila/comic-commerce/internal/wishlist/delivery/http"
	wishlistRepo "github.com/franvila/comic-commerce/internal/wishlist/repository"
	"github.com/franvila/comic-commerce/kafka"
	"github.com/franvila/comic-commerce/pkg/auth"
	"github.com/franvila/comic-commerce/pkg/database"
	"github.com/franvila/comic-commerce/pkg/logger"
	"github.com/franvila/comic-commerce/pkg/tracing"

	_ "github.com/franvila/comic-commerce/docs"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "comic-commerce")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logLevel := getEnv("LOG_LEVEL", "info")
	logger.Init(serviceName, logLevel, isDevelopment)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting comic commerce service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "comicdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	sqlDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer sqlDB.Close()

	db, err := database.NewGormConnection(sqlDB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize ORM")
	}

	// Initialize repositories and run migrations
	users := userRepo.NewGormUserRepositoryWithTracing(db)
	tokens := userRepo.NewGormTokenRepository(db)
	comics := comicRepo.NewGormComicRepositoryWithTracing(db)
	wishlist := wishlistRepo.NewGormWishlistRepository(db)

	for _, migrate := range []func() error{
		users.AutoMigrate,
		tokens.AutoMigrate,
		comics.AutoMigrate,
		wishlist.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Optional Redis for response caching and rate limiting
	redisClient := connectRedis(getEnv("REDIS_ADDR", ""))

	// Optional Kafka publisher for catalog and wishlist events
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Guard verifies tokens against the database
	guard := auth.NewGuard(userRepo.NewTokenVerifier(tokens))

	policy := auth.DefaultPasswordPolicy()
	if raw := getEnv("PASSWORD_MIN_LENGTH", ""); raw != "" {
		if minLength, err := strconv.Atoi(raw); err == nil && minLength > 0 {
			policy.MinLength = minLength
		}
	}

	// Initialize HTTP handlers
	userHandler := userHTTP.NewUserHandler(users, tokens, policy, guard)
	comicHandler := comicHTTP.NewComicHandler(comics, publisher, guard)
	wishlistHandler := wishlistHTTP.NewWishlistHandler(wishlist, users, comics, publisher, guard)

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.GlobalRateLimiter(redisClient))

	userHandler.RegisterRoutes(router)
	wishlistHandler.RegisterRoutes(router)

	// Catalog reads are cached in Redis
	cachedRouter := router.NewRoute().Subrouter()
	cachedRouter.Use(middleware.CacheMiddleware(redisClient, middleware.DefaultCacheConfig()))
	comicHandler.RegisterRoutes(cachedRouter)

	// Health check endpoint
	userHTTP.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	userHTTP.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: otelhttp.NewHandler(c.Handler(router), "http.server"),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

// connectRedis returns nil when Redis is not configured or unreachable,
// callers treat a nil client as "caching disabled".
func connectRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Error().Err(err).Str("addr", addr).Msg("Redis unavailable, caching disabled")
		return nil
	}

	logger.Logger.Info().Str("addr", addr).Msg("Redis connected")
	return client
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
