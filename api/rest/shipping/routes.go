package shipping

import (
	"codeberg.org/atelier/server/internal/shipping"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, client *shipping.Client, origin shipping.Address) {
	router.POST("/shipping/rates", RatesHandler(client, origin))
}
