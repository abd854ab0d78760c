package model

import "time"

// CartItemModel mirrors the 'cart_items' table, one row per (user, product).
type CartItemModel struct {
	ID        string  `gorm:"type:varchar(24);primaryKey"`
	UserID    string  `gorm:"type:varchar(24);not null;uniqueIndex:idx_cart_items_user_product"`
	ProductID string  `gorm:"type:varchar(24);not null;uniqueIndex:idx_cart_items_user_product"`
	Quantity  int     `gorm:"not null;check:chk_cart_items_quantity,quantity >= 1"`
	Price     float64 `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
