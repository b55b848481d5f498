package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one pending purchase line. The unique index on
// (user_id, product_id, size, color) backs the atomic get-or-create merge:
// a repeat add for the same tuple increments quantity instead of inserting.
type CartItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_cart_items_line,priority:1"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_cart_items_line,priority:2"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Size      string    `gorm:"column:size;not null;uniqueIndex:idx_cart_items_line,priority:3"`
	Color     string    `gorm:"column:color;not null;uniqueIndex:idx_cart_items_line,priority:4"`
	Quantity  int       `gorm:"column:quantity;not null;default:1"`
	AddedAt   time.Time `gorm:"column:added_at;autoCreateTime"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
