// Package model holds the GORM persistence structs. Ids are 24-hex object ids
// generated by the application, so no column relies on a database default.
package model

import "time"

// AddressModel is embedded into users and orders with a column prefix.
type AddressModel struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	ZipCode string `gorm:"type:varchar(20)"`
	Country string `gorm:"type:varchar(100)"`
}

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        string       `gorm:"type:varchar(24);primaryKey"`
	Name      string       `gorm:"type:varchar(100);not null"`
	Email     string       `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	Password  string       `gorm:"type:varchar(255);not null"`
	Role      string       `gorm:"type:varchar(20);not null;default:customer;index"`
	Address   AddressModel `gorm:"embedded;embeddedPrefix:address_"`
	Phone     string       `gorm:"type:varchar(30)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
