package products

import (
	"context"
	"fmt"

	"codeberg.org/atelier/server/internal/apperrors"
	"codeberg.org/atelier/server/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	row := r.db.QueryRow(ctx, queryCreate,
		req.Title,
		req.Artist,
		req.Description,
		req.PriceCents,
		req.Currency,
		req.Medium,
		req.Dimensions,
		req.Stock,
		req.IsPublished,
	)

	product, err := scanProduct(row)
	if err != nil {
		return nil, storage.TranslateError("products.Create", err)
	}

	return product, nil
}

func (r *Repository) Get(ctx context.Context, productID string) (*Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx, queryGet, productID))
	if err != nil {
		return nil, storage.TranslateError("products.Get", err)
	}

	return product, nil
}

// List returns products newest first. onlyPublished restricts to the public
// catalog view. The total count reflects the same filter.
func (r *Repository) List(ctx context.Context, onlyPublished bool, limit, offset int) ([]Product, int, error) {
	countQuery := queryCount
	listQuery := queryList

	if onlyPublished {
		countQuery = queryCountPublished
		listQuery = queryListPublished
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, storage.TranslateError("products.List", err)
	}

	rows, err := r.db.Query(ctx, listQuery, limit, offset)
	if err != nil {
		return nil, 0, storage.TranslateError("products.List", err)
	}

	defer rows.Close()

	list := []Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, storage.TranslateError("products.List", err)
		}

		list = append(list, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, storage.TranslateError("products.List", err)
	}

	return list, total, nil
}

func (r *Repository) Update(ctx context.Context, productID string, req UpdateProductRequest) (*Product, error) {
	row := r.db.QueryRow(ctx, queryUpdate,
		req.Title,
		req.Artist,
		req.Description,
		req.PriceCents,
		req.Currency,
		req.Medium,
		req.Dimensions,
		req.Stock,
		req.IsPublished,
		productID,
	)

	product, err := scanProduct(row)
	if err != nil {
		return nil, storage.TranslateError("products.Update", err)
	}

	return product, nil
}

func (r *Repository) SetImageURL(ctx context.Context, productID, imageURL string) (*Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx, querySetImageURL, imageURL, productID))
	if err != nil {
		return nil, storage.TranslateError("products.SetImageURL", err)
	}

	return product, nil
}

func (r *Repository) Delete(ctx context.Context, productID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, productID)
	if err != nil {
		return storage.TranslateError("products.Delete", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.NewStorageError("not-found", "products.Delete", pgx.ErrNoRows)
	}

	return nil
}

// ReserveStock decrements stock for a purchase. Insufficient stock surfaces
// as a failed-precondition storage error so checkout maps it to a 400.
func (r *Repository) ReserveStock(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	tag, err := r.db.Exec(ctx, queryReserveStock, quantity, productID)
	if err != nil {
		return storage.TranslateError("products.ReserveStock", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.NewStorageError("failed-precondition", "products.ReserveStock",
			fmt.Errorf("insufficient stock for product %s", productID))
	}

	return nil
}

// ReleaseStock returns reserved stock after a canceled or failed checkout.
func (r *Repository) ReleaseStock(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	_, err := r.db.Exec(ctx, queryReleaseStock, quantity, productID)

	return storage.TranslateError("products.ReleaseStock", err)
}

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Artist,
		&p.Description,
		&p.PriceCents,
		&p.Currency,
		&p.Medium,
		&p.Dimensions,
		&p.ImageURL,
		&p.Stock,
		&p.IsPublished,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
