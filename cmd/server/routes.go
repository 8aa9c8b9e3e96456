package main

import (
	"time"

	"codeberg.org/atelier/server/api/rest/admin"
	"codeberg.org/atelier/server/api/rest/cart"
	"codeberg.org/atelier/server/api/rest/checkout"
	"codeberg.org/atelier/server/api/rest/health"
	"codeberg.org/atelier/server/api/rest/orders"
	"codeberg.org/atelier/server/api/rest/products"
	"codeberg.org/atelier/server/api/rest/shipping"
	shippingsvc "codeberg.org/atelier/server/internal/shipping"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// the gallery's shipping origin
var galleryOrigin = shippingsvc.Address{
	Name:    "Atelier Gallery",
	Street1: "215 Grand St",
	City:    "Brooklyn",
	State:   "NY",
	Zip:     "11211",
	Country: "US",
}

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.Use(server.errHandler.Middleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		products.RegisterRoutes(v1, server.productRepo)
		cart.RegisterRoutes(v1, server.cartStore, server.productRepo, server.checkoutRate)
		orders.RegisterRoutes(v1, server.orderRepo)
		shipping.RegisterRoutes(v1, server.services.Shipping, galleryOrigin)
		checkout.RegisterRoutes(v1, server.cartStore, server.productRepo, server.orderRepo, server.services.Payments, server.checkoutRate)
		admin.RegisterRoutes(v1, server.productRepo, server.orderRepo, server.services.Media, server.monitorStore)
	}
}

// allows the storefront UI to call the API from another origin
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://atelier.gallery"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
