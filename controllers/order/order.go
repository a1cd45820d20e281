package orderControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KarthigaP20/seasidewaffle/models"
	"github.com/KarthigaP20/seasidewaffle/services"
)

// -------- Request Structs --------

// Price fields are pointers: "required" checks presence, and an
// explicit zero is a valid price.
type OrderItemInput struct {
	ProductID uint     `json:"product" binding:"required"`
	Quantity  int      `json:"quantity"`
	Price     *float64 `json:"price" binding:"required"`
}

type PlaceOrderRequest struct {
	OrderItems      []OrderItemInput       `json:"orderItems" binding:"required"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	TotalPrice      *float64               `json:"totalPrice" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to DeliveryStatus
func mapDeliveryStatus(status string) (models.DeliveryStatus, error) {
	switch status {
	case string(models.DeliveryStatusPending):
		return models.DeliveryStatusPending, nil
	case string(models.DeliveryStatusShipped):
		return models.DeliveryStatusShipped, nil
	case string(models.DeliveryStatusOutForDelivery):
		return models.DeliveryStatusOutForDelivery, nil
	case string(models.DeliveryStatusDelivered):
		return models.DeliveryStatusDelivered, nil
	default:
		return "", errors.New("invalid delivery status")
	}
}

// fallback returns the first non-empty value.
func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return "N/A"
}

// fillShipping backfills missing shipping fields from the user's stored
// profile, with "N/A" as the last resort.
func fillShipping(addr models.ShippingAddress, user models.User) models.ShippingAddress {
	return models.ShippingAddress{
		Name:    fallback(addr.Name, user.Name),
		Phone:   fallback(addr.Phone, user.Phone),
		Address: fallback(addr.Address, user.Address.Line1),
		City:    fallback(addr.City, user.Address.City),
		State:   fallback(addr.State, user.Address.State),
		Country: fallback(addr.Country, user.Address.Country),
		Pincode: fallback(addr.Pincode, user.Address.Pincode),
	}
}

// -------- Handlers --------

// POST /api/orders
//
// Line-item prices are persisted exactly as submitted; they are not
// re-validated against the live catalog.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.OrderItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No products in order"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		items := make([]models.OrderItem, 0, len(req.OrderItems))
		for _, item := range req.OrderItems {
			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  qty,
				Price:     *item.Price,
			})
		}

		order := models.Order{
			UserID:          userID,
			Items:           items,
			ShippingAddress: fillShipping(req.ShippingAddress, user),
			TotalPrice:      *req.TotalPrice,
			DeliveryStatus:  models.DeliveryStatusPending,
		}
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while creating order"})
			return
		}

		// Confirmation mail is fire-and-forget; a mail failure never fails
		// or rolls back the order.
		go func() {
			if err := services.SendOrderConfirmation(user.Email, order.ID); err != nil {
				log.Printf("❌ Order confirmation email for order %d failed: %v", order.ID, err)
			}
		}()

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders/:id (the id is the owning user's id)
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("User").
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while fetching orders"})
			return
		}

		backfillShippingNames(orders)
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		backfillShippingNames(orders)
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /api/orders/:id/status (admin)
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapDeliveryStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if err := db.Model(&order).Update("delivery_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating status"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// Older orders can predate the shipping-name requirement; show the account
// name instead of an empty field.
func backfillShippingNames(orders []models.Order) {
	for i := range orders {
		if orders[i].ShippingAddress.Name == "" || orders[i].ShippingAddress.Name == "N/A" {
			if orders[i].User.Name != "" {
				orders[i].ShippingAddress.Name = orders[i].User.Name
			}
		}
	}
}
