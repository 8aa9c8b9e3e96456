package products

import (
	"codeberg.org/atelier/server/shop/products"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, productRepo *products.Repository) {
	router.GET("/products", ListHandler(productRepo))
	router.GET("/products/:id", GetHandler(productRepo))
}
