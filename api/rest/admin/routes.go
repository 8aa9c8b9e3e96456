package admin

import (
	"codeberg.org/atelier/server/internal/auth"
	"codeberg.org/atelier/server/internal/media"
	"codeberg.org/atelier/server/internal/monitor"
	"codeberg.org/atelier/server/shop/orders"
	"codeberg.org/atelier/server/shop/products"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	router *gin.RouterGroup,
	productRepo *products.Repository,
	orderRepo *orders.Repository,
	mediaClient *media.Client,
	monitorStore *monitor.Store,
) {
	group := router.Group("/admin")
	group.Use(auth.AdminMiddleware())
	{
		group.GET("/products", ListProductsHandler(productRepo))
		group.POST("/products", CreateProductHandler(productRepo))
		group.PUT("/products/:id", UpdateProductHandler(productRepo))
		group.DELETE("/products/:id", DeleteProductHandler(productRepo, mediaClient))
		group.POST("/products/:id/image", UploadImageHandler(productRepo, mediaClient))

		group.GET("/orders", ListOrdersHandler(orderRepo))
		group.PUT("/orders/:id/status", UpdateOrderStatusHandler(orderRepo))

		group.GET("/errors", ListErrorEventsHandler(monitorStore))
	}
}
