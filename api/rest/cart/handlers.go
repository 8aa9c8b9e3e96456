package cart

import (
	"net/http"
	"strings"

	"codeberg.org/atelier/server/internal/apperrors"
	"codeberg.org/atelier/server/shop/carts"
	"codeberg.org/atelier/server/shop/products"
	"github.com/gin-gonic/gin"
)

const defaultCurrency = "usd"

// CreateHandler allocates a new empty cart
func CreateHandler(cartStore *carts.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				apperrors.Abort(c, apperrors.Validation("invalid request body").WithCode("INVALID_REQUEST_BODY"))
				return
			}
		}

		currency, err := normalizeCurrency(req.Currency)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		created, err := cartStore.Create(c.Request.Context(), currency)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// normalizeCurrency applies the default and the supported-currency check
// to a requested cart currency.
func normalizeCurrency(value string) (string, error) {
	if value == "" {
		return defaultCurrency, nil
	}

	if err := apperrors.ValidateCurrency(value); err != nil {
		return "", err
	}

	return strings.ToLower(value), nil
}

// GetHandler returns the cart by id
func GetHandler(cartStore *carts.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		loaded, err := cartStore.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusOK, loaded)
	}
}

// AddItemHandler adds a product line after checking the catalog
func AddItemHandler(cartStore *carts.Store, productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Abort(c, apperrors.Validation("invalid request body").WithCode("INVALID_REQUEST_BODY"))
			return
		}

		if req.Quantity <= 0 {
			req.Quantity = 1
		}

		product, err := productRepo.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		if !product.IsPublished {
			apperrors.Abort(c, apperrors.NotFound("product"))
			return
		}

		if product.Stock < req.Quantity {
			apperrors.Abort(c, apperrors.Validation("not enough stock for this artwork").
				WithCode("INSUFFICIENT_STOCK").
				WithDetails(map[string]any{"available": product.Stock}))
			return
		}

		updated, err := cartStore.AddItem(c.Request.Context(), c.Param("id"), carts.Item{
			ProductID:  product.ID,
			Title:      product.Title,
			PriceCents: product.PriceCents,
			Quantity:   req.Quantity,
		})
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// UpdateItemHandler changes a line's quantity; zero removes it
func UpdateItemHandler(cartStore *carts.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Abort(c, apperrors.Validation("invalid request body").WithCode("INVALID_REQUEST_BODY"))
			return
		}

		updated, found, err := cartStore.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("productID"), req.Quantity)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		if !found {
			apperrors.Abort(c, apperrors.NotFound("cart item"))
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// RemoveItemHandler drops a product line from the cart
func RemoveItemHandler(cartStore *carts.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		updated, found, err := cartStore.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("productID"))
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		if !found {
			apperrors.Abort(c, apperrors.NotFound("cart item"))
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}
