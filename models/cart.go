package models

import "time"

// CartItem holds one product in a user's cart. The composite unique index
// keeps at most one row per (user, product) pair even under concurrent adds.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null;default:1" json:"qty"`
	AddedAt   time.Time `json:"added_at"`
}
