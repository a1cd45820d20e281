package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `gorm:"default:General" json:"category"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Ingredients []string  `gorm:"serializer:json" json:"ingredients"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	Available   bool      `gorm:"default:true" json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
