package model

import "time"

// ReviewModel mirrors the 'reviews' table, one row per (user, product).
type ReviewModel struct {
	ID                 string `gorm:"type:varchar(24);primaryKey"`
	UserID             string `gorm:"type:varchar(24);not null;uniqueIndex:idx_reviews_user_product"`
	ProductID          string `gorm:"type:varchar(24);not null;uniqueIndex:idx_reviews_user_product;index"`
	Rating             int    `gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Comment            string `gorm:"type:varchar(1000)"`
	IsVerifiedPurchase bool   `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&CategoryModel{},
		&CartItemModel{},
		&OrderModel{},
		&ReviewModel{},
	}
}
