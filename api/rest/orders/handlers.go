package orders

import (
	"net/http"
	"strings"

	"codeberg.org/atelier/server/internal/apperrors"
	"codeberg.org/atelier/server/internal/auth"
	"codeberg.org/atelier/server/shop/orders"
	"github.com/gin-gonic/gin"
)

// GetHandler returns an order by id. Anonymous callers get the redacted
// status view; the order's own account (or an admin) gets the full order.
func GetHandler(orderRepo *orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orderRepo.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		viewerEmail := c.GetString("user_email")
		viewerRole := c.GetString("user_role")

		if viewerRole == auth.RoleAdmin || (viewerEmail != "" && strings.EqualFold(viewerEmail, order.Email)) {
			c.JSON(http.StatusOK, order)
			return
		}

		c.JSON(http.StatusOK, StatusResponse{
			ID:        order.ID,
			Status:    order.Status,
			CreatedAt: order.CreatedAt,
		})
	}
}

// ListMineHandler lists the authenticated caller's orders, newest first.
func ListMineHandler(orderRepo *orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("user_email")
		if email == "" {
			apperrors.Abort(c, apperrors.Unauthorized(""))
			return
		}

		list, err := orderRepo.ListByEmail(c.Request.Context(), email)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Orders: list})
	}
}
