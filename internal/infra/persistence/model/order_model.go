package model

import "time"

// OrderItemModel is one line of the jsonb items column.
type OrderItemModel struct {
	ProductID string  `json:"product"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              string           `gorm:"type:varchar(24);primaryKey"`
	UserID          string           `gorm:"type:varchar(24);not null;index"`
	Items           []OrderItemModel `gorm:"type:jsonb;serializer:json;not null"`
	TotalAmount     float64          `gorm:"type:numeric(12,2);not null;check:chk_orders_total,total_amount >= 0"`
	Status          string           `gorm:"type:varchar(20);not null;index"`
	PaymentStatus   string           `gorm:"type:varchar(20);not null"`
	PaymentMethod   string           `gorm:"type:varchar(50)"`
	ShippingAddress AddressModel     `gorm:"embedded;embeddedPrefix:shipping_"`
	OrderDate       time.Time        `gorm:"not null"`
	DeliveryDate    *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
