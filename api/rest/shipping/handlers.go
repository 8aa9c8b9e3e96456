package shipping

import (
	"net/http"

	"codeberg.org/atelier/server/internal/apperrors"
	"codeberg.org/atelier/server/internal/shipping"
	"github.com/gin-gonic/gin"
)

// RatesHandler fetches carrier rates for a destination and returns the
// aggregated quote (sorted rates plus cheapest/fastest/best-value picks).
func RatesHandler(client *shipping.Client, origin shipping.Address) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RatesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Abort(c, apperrors.Validation("invalid request body").WithCode("INVALID_REQUEST_BODY"))
			return
		}

		if err := apperrors.ValidateRequired(map[string]any{
			"street1": req.Address.Street1,
			"city":    req.Address.City,
			"zip":     req.Address.Zip,
			"country": req.Address.Country,
		}, []string{"street1", "city", "zip", "country"}); err != nil {
			apperrors.Abort(c, err)
			return
		}

		parcel := defaultParcel
		if req.Parcel != nil {
			parcel = *req.Parcel
		}

		rates, err := client.GetRates(c.Request.Context(), origin, req.Address, parcel)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusOK, shipping.Aggregate(rates))
	}
}
