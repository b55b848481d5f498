package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/modastore/modastore-backend/pkg/db/models"
)

// SaleLine identifies one product quantity to finalize. CartItemID, when set,
// marks the cart row consumed by the sale.
type SaleLine struct {
	ProductID  uuid.UUID  `json:"product_id" validate:"required"`
	Size       string     `json:"size"`
	Color      string     `json:"color"`
	Quantity   int        `json:"quantity" validate:"required"`
	CartItemID *uuid.UUID `json:"-"`
}

// SaleItemDTO is the outward-facing frozen sale line.
type SaleItemDTO struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	CostAtSale  decimal.Decimal `json:"cost_at_sale"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Profit      decimal.Decimal `json:"profit"`
}

// SaleDTO is the outward-facing sale snapshot.
type SaleDTO struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	Profit    decimal.Decimal `json:"profit"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []SaleItemDTO   `json:"items"`
}

// NewSaleDTO maps the persisted sale (with items) to the API shape.
func NewSaleDTO(sale *models.Sale) SaleDTO {
	dto := SaleDTO{
		ID:        sale.ID,
		UserID:    sale.UserID,
		Total:     sale.Total,
		Profit:    SaleProfit(sale),
		CreatedAt: sale.CreatedAt,
		Items:     make([]SaleItemDTO, 0, len(sale.Items)),
	}
	for i := range sale.Items {
		item := &sale.Items[i]
		dto.Items = append(dto.Items, SaleItemDTO{
			ID:          item.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
			CostAtSale:  item.CostAtSale,
			Size:        item.Size,
			Color:       item.Color,
			LineTotal:   item.PriceAtSale.Mul(decimal.NewFromInt(int64(item.Quantity))),
			Profit:      item.Profit(),
		})
	}
	return dto
}

// SaleProfit sums per-item profit from the frozen snapshot values only.
func SaleProfit(sale *models.Sale) decimal.Decimal {
	profit := decimal.Zero
	for i := range sale.Items {
		profit = profit.Add(sale.Items[i].Profit())
	}
	return profit
}
