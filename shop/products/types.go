package products

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	Medium      string    `json:"medium,omitempty"`     // e.g. "oil on canvas"
	Dimensions  string    `json:"dimensions,omitempty"` // e.g. "24x36 in"
	ImageURL    string    `json:"image_url,omitempty"`
	Stock       int       `json:"stock"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Title       string `json:"title" binding:"required"`
	Artist      string `json:"artist" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
	Medium      string `json:"medium"`
	Dimensions  string `json:"dimensions"`
	Stock       int    `json:"stock"`
	IsPublished bool   `json:"is_published"`
}

// pointer fields distinguish "not provided" from zero values
type UpdateProductRequest struct {
	Title       *string `json:"title"`
	Artist      *string `json:"artist"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents"`
	Currency    *string `json:"currency"`
	Medium      *string `json:"medium"`
	Dimensions  *string `json:"dimensions"`
	Stock       *int    `json:"stock"`
	IsPublished *bool   `json:"is_published"`
}
