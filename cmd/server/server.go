package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"codeberg.org/algorave/errorpages/internal/config"
	"codeberg.org/algorave/errorpages/internal/errors"
	"codeberg.org/algorave/errorpages/internal/logger"
)

const (
	limiterPrefix = "errorpages:limiter"
	redisPingWait = 5 * time.Second
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate limit: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// ClientIP keys the rate limiter, so forwarded headers are only
	// honoured from configured proxies. nil trusts none.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	store, redisClient, err := newLimiterStore(cfg)
	if err != nil {
		return nil, err
	}

	server := &Server{
		config: cfg,
		router: router,
		redis:  redisClient,
	}

	RegisterRoutes(router, server, limiter.New(store, rate))

	router.NoRoute(errors.NoRoute)
	router.NoMethod(errors.NoMethod)

	logger.Info("server configured",
		"environment", cfg.Environment,
		"default_language", cfg.DefaultLanguage.String(),
		"rate_limit", cfg.RateLimit,
		"trusted_proxies", cfg.TrustedProxies,
		"limiter_store", storeName(redisClient),
	)

	return server, nil
}

// picks the redis store when REDIS_URL is set, memory otherwise
func newLimiterStore(cfg *config.Config) (limiter.Store, *redis.Client, error) {
	if cfg.RedisURL == "" {
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: limiterPrefix}), nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingWait)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: limiterPrefix})
	if err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}

	return store, client, nil
}

func storeName(client *redis.Client) string {
	if client == nil {
		return "memory"
	}

	return "redis"
}

// releases external connections
func (s *Server) Close() error {
	if s.redis == nil {
		return nil
	}

	return s.redis.Close()
}
