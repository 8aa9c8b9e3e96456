package checkout

import (
	"context"
	"net/http"

	"codeberg.org/atelier/server/internal/apperrors"
	"codeberg.org/atelier/server/internal/logger"
	"codeberg.org/atelier/server/internal/payments"
	"codeberg.org/atelier/server/shop/carts"
	"codeberg.org/atelier/server/shop/orders"
	"codeberg.org/atelier/server/shop/products"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler validates the request, reserves stock, creates the
// payment intent, and records a pending order.
func CheckoutHandler(
	cartStore *carts.Store,
	productRepo *products.Repository,
	orderRepo *orders.Repository,
	paymentClient *payments.Client,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Abort(c, apperrors.Validation("invalid request body").WithCode("INVALID_REQUEST_BODY"))
			return
		}

		if err := validateCheckout(&req); err != nil {
			apperrors.Abort(c, err)
			return
		}

		ctx := c.Request.Context()

		cart, err := cartStore.Get(ctx, req.CartID)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		if len(cart.Items) == 0 {
			apperrors.Abort(c, apperrors.Validation("cart is empty").WithCode("EMPTY_CART"))
			return
		}

		reserved, err := reserveStock(ctx, productRepo, cart.Items)
		if err != nil {
			releaseStock(productRepo, reserved)
			apperrors.Abort(c, err)
			return
		}

		subtotal := cart.Subtotal()
		total := subtotal + req.ShippingCents

		intent, err := paymentClient.CreateIntent(ctx, payments.CreateIntentParams{
			AmountCents:  total,
			Currency:     req.Currency,
			ReceiptEmail: req.Email,
			Description:  "Atelier order",
		})
		if err != nil {
			releaseStock(productRepo, reserved)
			apperrors.Abort(c, err)
			return
		}

		order, err := orderRepo.Create(ctx, orders.CreateOrderRequest{
			Email:           req.Email,
			Items:           lineItemsFromCart(cart.Items),
			Address:         req.Address,
			SubtotalCents:   subtotal,
			ShippingCents:   req.ShippingCents,
			Currency:        req.Currency,
			PaymentIntentID: intent.ID,
			ShippingRateID:  req.ShippingRateID,
		})
		if err != nil {
			releaseStock(productRepo, reserved)

			// the intent is now orphaned; cancel it best-effort
			if _, cancelErr := paymentClient.CancelIntent(ctx, intent.ID); cancelErr != nil {
				logger.ErrorErr(cancelErr, "failed to cancel orphaned payment intent", "intent_id", intent.ID)
			}

			apperrors.Abort(c, err)
			return
		}

		c.JSON(http.StatusCreated, CheckoutResponse{
			Order:        order,
			ClientSecret: intent.ClientSecret,
		})
	}
}

// ConfirmHandler marks the order paid once the intent has succeeded and
// clears the cart.
func ConfirmHandler(
	cartStore *carts.Store,
	orderRepo *orders.Repository,
	paymentClient *payments.Client,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConfirmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Abort(c, apperrors.Validation("invalid request body").WithCode("INVALID_REQUEST_BODY"))
			return
		}

		if err := apperrors.ValidateRequired(map[string]any{
			"payment_intent_id": req.PaymentIntentID,
		}, []string{"payment_intent_id"}); err != nil {
			apperrors.Abort(c, err)
			return
		}

		ctx := c.Request.Context()

		intent, err := paymentClient.GetIntent(ctx, req.PaymentIntentID)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		if intent.Status != "succeeded" {
			apperrors.Abort(c, apperrors.Validation("payment has not completed").
				WithCode("PAYMENT_NOT_COMPLETED").
				WithDetails(map[string]any{"intentStatus": intent.Status}))
			return
		}

		order, err := orderRepo.GetByIntent(ctx, req.PaymentIntentID)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		updated, err := orderRepo.UpdateStatus(ctx, order.ID, orders.StatusPaid)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		if req.CartID != "" {
			if err := cartStore.Clear(ctx, req.CartID); err != nil {
				// the order is already paid; a stale cart is not worth failing over
				logger.ErrorErr(err, "failed to clear cart after checkout", "cart_id", req.CartID)
			}
		}

		c.JSON(http.StatusOK, updated)
	}
}

func validateCheckout(req *CheckoutRequest) error {
	if err := apperrors.ValidateRequired(map[string]any{
		"cart_id":  req.CartID,
		"email":    req.Email,
		"currency": req.Currency,
		"street1":  req.Address.Street1,
		"city":     req.Address.City,
		"zip":      req.Address.Zip,
		"country":  req.Address.Country,
	}, []string{"cart_id", "email", "currency", "street1", "city", "zip", "country"}); err != nil {
		return err
	}

	if err := apperrors.ValidateEmail(req.Email); err != nil {
		return err
	}

	if err := apperrors.ValidateCurrency(req.Currency); err != nil {
		return err
	}

	return apperrors.ValidateAmount(req.ShippingCents, 0)
}

// reserves stock for every line, returning the lines already reserved so
// a failure can roll them back
func reserveStock(ctx context.Context, productRepo *products.Repository, items []carts.Item) ([]carts.Item, error) {
	reserved := make([]carts.Item, 0, len(items))

	for _, item := range items {
		if err := productRepo.ReserveStock(ctx, item.ProductID, item.Quantity); err != nil {
			return reserved, err
		}

		reserved = append(reserved, item)
	}

	return reserved, nil
}

// best-effort rollback; runs on a fresh context since the request may be
// aborting
func releaseStock(productRepo *products.Repository, reserved []carts.Item) {
	if len(reserved) == 0 {
		return
	}

	ctx := context.Background()

	for _, item := range reserved {
		if err := productRepo.ReleaseStock(ctx, item.ProductID, item.Quantity); err != nil {
			logger.ErrorErr(err, "failed to release reserved stock",
				"product_id", item.ProductID,
				"quantity", item.Quantity,
			)
		}
	}
}

func lineItemsFromCart(items []carts.Item) orders.LineItems {
	lines := make(orders.LineItems, 0, len(items))

	for _, item := range items {
		lines = append(lines, orders.LineItem{
			ProductID:  item.ProductID,
			Title:      item.Title,
			PriceCents: item.PriceCents,
			Quantity:   item.Quantity,
		})
	}

	return lines
}
