package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/modastore/modastore-backend/pkg/db/models"
)

// AddItemInput captures the payload for adding a product to the cart.
type AddItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	Quantity  int       `json:"quantity" validate:"required"`
}

// CartItemDTO is the outward-facing cart line representation.
type CartItemDTO struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	AddedAt     time.Time       `json:"added_at"`
}

// NewCartItemDTO maps a cart line (with its product loaded) to the API shape.
func NewCartItemDTO(item *models.CartItem) CartItemDTO {
	dto := CartItemDTO{
		ID:        item.ID,
		ProductID: item.ProductID,
		Size:      item.Size,
		Color:     item.Color,
		Quantity:  item.Quantity,
		AddedAt:   item.AddedAt,
	}
	if item.Product != nil {
		dto.ProductName = item.Product.Name
		dto.SKU = item.Product.SKU
		dto.UnitPrice = item.Product.Price
		dto.LineTotal = item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
	}
	return dto
}

// CartDTO bundles the user's lines with the live total quote.
type CartDTO struct {
	Items []CartItemDTO   `json:"items"`
	Total decimal.Decimal `json:"total"`
}
