package products

import (
	"net/http"
	"strconv"

	"codeberg.org/atelier/server/api/rest/pagination"
	"codeberg.org/atelier/server/internal/apperrors"
	"codeberg.org/atelier/server/shop/products"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 24
	maxPageSize     = 100
)

// ListHandler lists published catalog products (no auth required)
func ListHandler(productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := paramsFromQuery(c)

		list, total, err := productRepo.List(c.Request.Context(), true, params.Limit, params.Offset)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{
			Products:   list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetHandler returns a single published product by id
func GetHandler(productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := productRepo.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		if !product.IsPublished {
			apperrors.Abort(c, apperrors.NotFound("product"))
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func paramsFromQuery(c *gin.Context) pagination.Params {
	limit, _ := strconv.Atoi(c.Query("limit"))   //nolint:errcheck // zero falls back to default
	offset, _ := strconv.Atoi(c.Query("offset")) //nolint:errcheck // zero falls back to default

	return pagination.DefaultParams(limit, offset, defaultPageSize, maxPageSize)
}
