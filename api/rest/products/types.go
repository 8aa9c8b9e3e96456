package products

import (
	"codeberg.org/atelier/server/api/rest/pagination"
	"codeberg.org/atelier/server/shop/products"
)

// ListResponse wraps a catalog page with pagination metadata
type ListResponse struct {
	Products   []products.Product `json:"products"`
	Pagination pagination.Meta    `json:"pagination"`
}
