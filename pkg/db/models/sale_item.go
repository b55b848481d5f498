package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleItem snapshots one sold line. PriceAtSale and CostAtSale are copies
// taken from the product at finalize time; later product edits must never
// change them.
type SaleItem struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	SaleID      uuid.UUID       `gorm:"column:sale_id;type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	Quantity    int             `gorm:"column:quantity;not null"`
	PriceAtSale decimal.Decimal `gorm:"column:price_at_sale;type:numeric(10,2);not null"`
	CostAtSale  decimal.Decimal `gorm:"column:cost_at_sale;type:numeric(10,2);not null"`
	Size        string          `gorm:"column:size;not null"`
	Color       string          `gorm:"column:color;not null"`
}

// Profit returns (price_at_sale - cost_at_sale) * quantity from the frozen
// snapshot only.
func (s SaleItem) Profit() decimal.Decimal {
	return s.PriceAtSale.Sub(s.CostAtSale).Mul(decimal.NewFromInt(int64(s.Quantity)))
}

func (s *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
