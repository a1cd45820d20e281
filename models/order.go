package models

import "time"

type DeliveryStatus string

const (
	DeliveryStatusPending        DeliveryStatus = "Pending"
	DeliveryStatusShipped        DeliveryStatus = "Shipped"
	DeliveryStatusOutForDelivery DeliveryStatus = "Out for Delivery"
	DeliveryStatusDelivered      DeliveryStatus = "Delivered"
)

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          string          `gorm:"not null;index" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	TotalPrice      float64         `gorm:"not null" json:"totalPrice"`
	DeliveryStatus  DeliveryStatus  `gorm:"type:VARCHAR(20);default:'Pending'" json:"deliveryStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// OrderItem freezes quantity and price as submitted at checkout. Price is
// never recomputed from the live product row.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

// ShippingAddress is snapshotted onto the order at checkout.
type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
}
