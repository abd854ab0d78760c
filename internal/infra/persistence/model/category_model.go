package model

import "time"

// CategoryModel mirrors the 'categories' table. ParentID is NULL for roots.
type CategoryModel struct {
	ID          string  `gorm:"type:varchar(24);primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name"`
	Slug        string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_slug"`
	Description string  `gorm:"type:text"`
	ParentID    *string `gorm:"type:varchar(24);index"`
	IsActive    bool    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
