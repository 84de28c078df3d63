package models

import "time"

// Product is the demo resource synchronized with RhoConnect.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Price     string    `json:"price"`
	Quantity  int       `json:"quantity"`
	SKU       *string   `gorm:"column:sku" json:"sku,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is a mobile user allowed through the authenticate endpoint.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Login        string    `gorm:"uniqueIndex" json:"login"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
