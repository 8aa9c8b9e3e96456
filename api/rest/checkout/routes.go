package checkout

import (
	"codeberg.org/atelier/server/internal/payments"
	"codeberg.org/atelier/server/shop/carts"
	"codeberg.org/atelier/server/shop/orders"
	"codeberg.org/atelier/server/shop/products"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	router *gin.RouterGroup,
	cartStore *carts.Store,
	productRepo *products.Repository,
	orderRepo *orders.Repository,
	paymentClient *payments.Client,
	limiter gin.HandlerFunc,
) {
	group := router.Group("/checkout")

	if limiter != nil {
		group.Use(limiter)
	}

	{
		group.POST("", CheckoutHandler(cartStore, productRepo, orderRepo, paymentClient))
		group.POST("/confirm", ConfirmHandler(cartStore, orderRepo, paymentClient))
	}
}
