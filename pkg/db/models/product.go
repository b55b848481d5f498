package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/modastore/modastore-backend/pkg/enums"
)

// Product is the canonical catalog listing. Price and cost are independent
// decimals; profit = price - cost and may be negative.
type Product struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CategoryID  *uuid.UUID      `gorm:"column:category_id;type:uuid"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Name        string          `gorm:"column:name;not null"`
	Description string          `gorm:"column:description;not null;default:''"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Cost        decimal.Decimal `gorm:"column:cost;type:numeric(10,2);not null;default:0"`
	Stock       int             `gorm:"column:stock;not null;default:0"`
	Gender      enums.Gender    `gorm:"column:gender;type:text;not null;default:'unisex'"`
	Colors      StringList      `gorm:"column:colors;type:jsonb;serializer:json"`
	Sizes       StringList      `gorm:"column:sizes;type:jsonb;serializer:json"`
	SKU         string          `gorm:"column:sku;not null;uniqueIndex"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// StringList is an ordered sequence of non-empty strings (colors, sizes).
type StringList []string

// Profit returns price - cost for a single unit.
func (p Product) Profit() decimal.Decimal {
	return p.Price.Sub(p.Cost)
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
