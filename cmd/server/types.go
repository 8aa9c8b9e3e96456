package main

import (
	"codeberg.org/atelier/server/internal/apperrors"
	"codeberg.org/atelier/server/internal/config"
	"codeberg.org/atelier/server/internal/media"
	"codeberg.org/atelier/server/internal/monitor"
	"codeberg.org/atelier/server/internal/payments"
	"codeberg.org/atelier/server/internal/shipping"
	"codeberg.org/atelier/server/shop/carts"
	"codeberg.org/atelier/server/shop/orders"
	"codeberg.org/atelier/server/shop/products"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	redisClient  *redis.Client
	config       *config.Config
	productRepo  *products.Repository
	orderRepo    *orders.Repository
	cartStore    *carts.Store
	monitorStore *monitor.Store
	errHandler   *apperrors.Handler
	services     *Services
	checkoutRate gin.HandlerFunc
	router       *gin.Engine
}

// holds all external service clients
type Services struct {
	Payments *payments.Client
	Shipping *shipping.Client
	Media    *media.Client
}
