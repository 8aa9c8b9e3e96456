package admin

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"time"

	"codeberg.org/atelier/server/api/rest/pagination"
	"codeberg.org/atelier/server/internal/apperrors"
	"codeberg.org/atelier/server/internal/logger"
	"codeberg.org/atelier/server/internal/media"
	"codeberg.org/atelier/server/internal/monitor"
	"codeberg.org/atelier/server/shop/orders"
	"codeberg.org/atelier/server/shop/products"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200

	maxImageBytes = 10 << 20 // 10 MiB
)

// CreateProductHandler adds a new catalog entry
func CreateProductHandler(productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req products.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Abort(c, apperrors.Validation("invalid request body").WithCode("INVALID_REQUEST_BODY"))
			return
		}

		if err := apperrors.ValidateCurrency(req.Currency); err != nil {
			apperrors.Abort(c, err)
			return
		}

		if err := apperrors.ValidateAmount(req.PriceCents, 1); err != nil {
			apperrors.Abort(c, err)
			return
		}

		product, err := productRepo.Create(c.Request.Context(), req)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// ListProductsHandler lists the full catalog including drafts
func ListProductsHandler(productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := paramsFromQuery(c)

		list, total, err := productRepo.List(c.Request.Context(), false, params.Limit, params.Offset)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusOK, ProductsListResponse{
			Products:   list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// UpdateProductHandler partially updates a catalog entry
func UpdateProductHandler(productRepo *products.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req products.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Abort(c, apperrors.Validation("invalid request body").WithCode("INVALID_REQUEST_BODY"))
			return
		}

		if req.Currency != nil {
			if err := apperrors.ValidateCurrency(*req.Currency); err != nil {
				apperrors.Abort(c, err)
				return
			}
		}

		if req.PriceCents != nil {
			if err := apperrors.ValidateAmount(*req.PriceCents, 1); err != nil {
				apperrors.Abort(c, err)
				return
			}
		}

		product, err := productRepo.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// DeleteProductHandler removes a catalog entry and its stored image
func DeleteProductHandler(productRepo *products.Repository, mediaClient *media.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := productRepo.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		if err := productRepo.Delete(c.Request.Context(), product.ID); err != nil {
			apperrors.Abort(c, err)
			return
		}

		// best-effort image cleanup; an orphaned object is not worth a 500
		if objectPath, ok := mediaClient.ObjectPath(product.ImageURL); ok {
			if err := mediaClient.Remove(c.Request.Context(), objectPath); err != nil {
				logger.ErrorErr(err, "failed to remove product image", "product_id", product.ID)
			}
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "product deleted"})
	}
}

// UploadImageHandler stores a product image in the object store and points
// the product at its public URL
func UploadImageHandler(productRepo *products.Repository, mediaClient *media.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")

		file, header, err := c.Request.FormFile("image")
		if err != nil {
			apperrors.Abort(c, apperrors.Validation("image file is required").WithCode("MISSING_IMAGE"))
			return
		}

		defer file.Close() //nolint:errcheck

		if header.Size > maxImageBytes {
			apperrors.Abort(c, apperrors.Validation("image exceeds the 10 MiB limit").WithCode("IMAGE_TOO_LARGE"))
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
		if err != nil {
			apperrors.Abort(c, fmt.Errorf("failed to read uploaded image: %w", err))
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		objectPath := fmt.Sprintf("products/%s/%d%s", productID, time.Now().Unix(), path.Ext(header.Filename))

		publicURL, err := mediaClient.Upload(c.Request.Context(), objectPath, contentType, data)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		product, err := productRepo.SetImageURL(c.Request.Context(), productID, publicURL)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// ListOrdersHandler pages through orders, optionally filtered by status
func ListOrdersHandler(orderRepo *orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		if status != "" && !orders.IsValidStatus(status) {
			apperrors.Abort(c, apperrors.Validation("unknown order status: "+status).WithCode("INVALID_STATUS"))
			return
		}

		params := paramsFromQuery(c)

		list, total, err := orderRepo.List(c.Request.Context(), status, params.Limit, params.Offset)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusOK, OrdersListResponse{
			Orders:     list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// UpdateOrderStatusHandler moves an order through its lifecycle
func UpdateOrderStatusHandler(orderRepo *orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Abort(c, apperrors.Validation("invalid request body").WithCode("INVALID_REQUEST_BODY"))
			return
		}

		if !orders.IsValidStatus(req.Status) {
			apperrors.Abort(c, apperrors.Validation("unknown order status: "+req.Status).WithCode("INVALID_STATUS"))
			return
		}

		order, err := orderRepo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// ListErrorEventsHandler reads recent monitoring records back for triage
func ListErrorEventsHandler(monitorStore *monitor.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit")) //nolint:errcheck // zero falls back to default
		if limit <= 0 || limit > maxPageSize {
			limit = defaultPageSize
		}

		events, err := monitorStore.Recent(c.Request.Context(), limit)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusOK, ErrorEventsResponse{Events: events})
	}
}

func paramsFromQuery(c *gin.Context) pagination.Params {
	limit, _ := strconv.Atoi(c.Query("limit"))   //nolint:errcheck // zero falls back to default
	offset, _ := strconv.Atoi(c.Query("offset")) //nolint:errcheck // zero falls back to default

	return pagination.DefaultParams(limit, offset, defaultPageSize, maxPageSize)
}
