package cart

import (
	"codeberg.org/atelier/server/shop/carts"
	"codeberg.org/atelier/server/shop/products"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, cartStore *carts.Store, productRepo *products.Repository, limiter gin.HandlerFunc) {
	group := router.Group("/cart")

	if limiter != nil {
		group.Use(limiter)
	}

	{
		group.POST("", CreateHandler(cartStore))
		group.GET("/:id", GetHandler(cartStore))
		group.POST("/:id/items", AddItemHandler(cartStore, productRepo))
		group.PUT("/:id/items/:productID", UpdateItemHandler(cartStore))
		group.DELETE("/:id/items/:productID", RemoveItemHandler(cartStore))
	}
}
