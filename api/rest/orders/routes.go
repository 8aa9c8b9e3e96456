package orders

import (
	"codeberg.org/atelier/server/internal/auth"
	"codeberg.org/atelier/server/shop/orders"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, orderRepo *orders.Repository) {
	router.GET("/orders/:id", auth.OptionalAuthMiddleware(), GetHandler(orderRepo))
	router.GET("/me/orders", auth.AuthMiddleware(), ListMineHandler(orderRepo))
}
