package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/modastore/modastore-backend/pkg/db/models"
	"github.com/modastore/modastore-backend/pkg/enums"
	"github.com/modastore/modastore-backend/pkg/pagination"
)

// CategoryDTO is the outward-facing category representation.
type CategoryDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategoryDTO maps the persistence model to the API shape.
func NewCategoryDTO(category *models.Category) CategoryDTO {
	return CategoryDTO{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}

// ProductDTO is the outward-facing product representation.
type ProductDTO struct {
	ID          uuid.UUID       `json:"id"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	Category    *CategoryDTO    `json:"category,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Profit      decimal.Decimal `json:"profit"`
	Stock       int             `json:"stock"`
	Gender      enums.Gender    `json:"gender"`
	Colors      []string        `json:"colors"`
	Sizes       []string        `json:"sizes"`
	SKU         string          `json:"sku"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewProductDTO maps the persistence model to the API shape.
func NewProductDTO(product *models.Product) ProductDTO {
	dto := ProductDTO{
		ID:          product.ID,
		CategoryID:  product.CategoryID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Cost:        product.Cost,
		Profit:      product.Profit(),
		Stock:       product.Stock,
		Gender:      product.Gender,
		Colors:      product.Colors,
		Sizes:       product.Sizes,
		SKU:         product.SKU,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.Category != nil {
		category := NewCategoryDTO(product.Category)
		dto.Category = &category
	}
	return dto
}

// CreateProductInput captures the payload for creating a product.
type CreateProductInput struct {
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock"`
	Gender      string          `json:"gender"`
	Colors      []string        `json:"colors"`
	Sizes       []string        `json:"sizes"`
	SKU         string          `json:"sku" validate:"required,max=64"`
}

// UpdateProductInput captures a partial product update. Nil fields stay untouched.
type UpdateProductInput struct {
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Gender      *string          `json:"gender,omitempty"`
	Colors      *[]string        `json:"colors,omitempty"`
	Sizes       *[]string        `json:"sizes,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
}

// ListProductsInput captures the inputs needed to paginate/filter the catalog.
type ListProductsInput struct {
	CategoryID *uuid.UUID
	Query      string
	Pagination pagination.Params
}

// ProductListResult is a single catalog page.
type ProductListResult struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// ProductSearchRow is the compact shape returned by the search endpoint.
type ProductSearchRow struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Stock int             `json:"stock"`
	Price decimal.Decimal `json:"price"`
}
