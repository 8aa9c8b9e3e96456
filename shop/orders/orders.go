package orders

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/atelier/server/internal/apperrors"
	"codeberg.org/atelier/server/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	row := r.db.QueryRow(ctx, queryCreate,
		req.Email,
		req.Items,
		req.Address,
		req.SubtotalCents,
		req.ShippingCents,
		req.SubtotalCents+req.ShippingCents,
		req.Currency,
		req.PaymentIntentID,
		req.ShippingRateID,
		StatusPending,
	)

	order, err := scanOrder(row)
	if err != nil {
		return nil, storage.TranslateError("orders.Create", err)
	}

	return order, nil
}

func (r *Repository) Get(ctx context.Context, orderID string) (*Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, queryGet, orderID))
	if err != nil {
		return nil, storage.TranslateError("orders.Get", err)
	}

	return order, nil
}

func (r *Repository) GetByIntent(ctx context.Context, paymentIntentID string) (*Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, queryGetByIntent, paymentIntentID))
	if err != nil {
		return nil, storage.TranslateError("orders.GetByIntent", err)
	}

	return order, nil
}

func (r *Repository) ListByEmail(ctx context.Context, email string) ([]Order, error) {
	rows, err := r.db.Query(ctx, queryListByEmail, email)
	if err != nil {
		return nil, storage.TranslateError("orders.ListByEmail", err)
	}

	defer rows.Close()

	list, err := collectOrders(rows)
	if err != nil {
		return nil, storage.TranslateError("orders.ListByEmail", err)
	}

	return list, nil
}

// List returns orders for the back-office, newest first, optionally
// filtered by status.
func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]Order, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCount, status).Scan(&total); err != nil {
		return nil, 0, storage.TranslateError("orders.List", err)
	}

	rows, err := r.db.Query(ctx, queryList, status, limit, offset)
	if err != nil {
		return nil, 0, storage.TranslateError("orders.List", err)
	}

	defer rows.Close()

	list, err := collectOrders(rows)
	if err != nil {
		return nil, 0, storage.TranslateError("orders.List", err)
	}

	return list, total, nil
}

// UpdateStatus moves an order one step through its lifecycle. The UPDATE
// only matches when the order's current status allows the transition, so a
// delivered order can never slide back to pending.
func (r *Repository) UpdateStatus(ctx context.Context, orderID, status string) (*Order, error) {
	allowed := statusPreconditions[status]
	if len(allowed) == 0 {
		return nil, apperrors.Validation("order status cannot be set to "+status).
			WithCode("INVALID_STATUS_TRANSITION")
	}

	order, err := scanOrder(r.db.QueryRow(ctx, queryUpdateStatus, status, orderID, allowed))
	if err == nil {
		return order, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.TranslateError("orders.UpdateStatus", err)
	}

	// zero rows matched: either the order is missing or its current
	// status does not allow the transition
	current, getErr := r.Get(ctx, orderID)
	if getErr != nil {
		return nil, getErr
	}

	if !CanTransition(current.Status, status) {
		return nil, apperrors.Validation(
			fmt.Sprintf("order cannot move from %s to %s", current.Status, status),
		).WithCode("INVALID_STATUS_TRANSITION").WithDetails(map[string]any{
			"current_status": current.Status,
			"target_status":  status,
		})
	}

	// the status changed between the update and the read; the caller can retry
	return nil, apperrors.NewStorageError("aborted", "orders.UpdateStatus",
		errors.New("order status changed concurrently"))
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order

	err := row.Scan(
		&o.ID,
		&o.Email,
		&o.Items,
		&o.Address,
		&o.SubtotalCents,
		&o.ShippingCents,
		&o.TotalCents,
		&o.Currency,
		&o.PaymentIntentID,
		&o.ShippingRateID,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	list := []Order{}

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}

		list = append(list, *order)
	}

	return list, rows.Err()
}
