package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale is an immutable historical record of a checkout. Total and the item
// snapshots are frozen at finalize time and never recomputed from products.
type Sale struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"column:user_id;type:uuid;not null"`
	Total     decimal.Decimal `gorm:"column:total;type:numeric(10,2);not null"`
	Items     []SaleItem      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
