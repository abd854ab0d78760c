package model

import "time"

// DimensionsModel is embedded into products with the dimension_ prefix.
type DimensionsModel struct {
	Length float64
	Width  float64
	Height float64
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          string          `gorm:"type:varchar(24);primaryKey"`
	Name        string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_products_name"`
	Description string          `gorm:"type:text"`
	Price       float64         `gorm:"type:numeric(12,2);not null;check:chk_products_price,price >= 0"`
	CategoryID  string          `gorm:"type:varchar(24);not null;index"`
	Stock       int             `gorm:"not null;default:0;check:chk_products_stock,stock >= 0"`
	Images      []string        `gorm:"type:jsonb;serializer:json"`
	Brand       string          `gorm:"type:varchar(100)"`
	Weight      float64         `gorm:"not null;default:0"`
	Dimensions  DimensionsModel `gorm:"embedded;embeddedPrefix:dimension_"`
	IsActive    bool            `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
