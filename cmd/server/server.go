package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/atelier/server/internal/apperrors"
	"codeberg.org/atelier/server/internal/config"
	"codeberg.org/atelier/server/internal/logger"
	"codeberg.org/atelier/server/internal/media"
	"codeberg.org/atelier/server/internal/monitor"
	"codeberg.org/atelier/server/internal/payments"
	"codeberg.org/atelier/server/internal/ratelimit"
	"codeberg.org/atelier/server/internal/shipping"
	"codeberg.org/atelier/server/internal/storage"
	"codeberg.org/atelier/server/shop/carts"
	"codeberg.org/atelier/server/shop/orders"
	"codeberg.org/atelier/server/shop/products"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// per-IP limit on cart and checkout mutations
const checkoutRateLimit = "30-M"

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	db, err := storage.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	redisClient := redis.NewClient(redisOpts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis")

	productRepo := products.NewRepository(db)
	orderRepo := orders.NewRepository(db)
	cartStore := carts.NewStore(redisClient)
	monitorStore := monitor.NewStore(db, cfg.Environment)

	services := &Services{
		Payments: payments.NewClient(payments.Config{APIKey: cfg.StripeAPIKey}),
		Shipping: shipping.NewClient(shipping.Config{APIToken: cfg.ShippoAPIToken}),
		Media: media.NewClient(media.Config{
			Endpoint: cfg.MediaEndpoint,
			APIKey:   cfg.MediaAPIKey,
			Bucket:   cfg.MediaBucket,
		}),
	}

	checkoutRate, err := ratelimit.Middleware(redisClient, checkoutRateLimit)
	if err != nil {
		redisClient.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		db.Close()
		return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
	}

	// the error handler is the single classification point for every route;
	// it is constructed here and injected, not a package singleton
	errHandler := apperrors.NewHandler(monitorStore)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())

	server := &Server{
		db:           db,
		redisClient:  redisClient,
		config:       cfg,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		cartStore:    cartStore,
		monitorStore: monitorStore,
		errHandler:   errHandler,
		services:     services,
		checkoutRate: checkoutRate,
		router:       router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
