package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KarthigaP20/seasidewaffle/models"
)

type AddCartInput struct {
	ProductID uint `json:"id" binding:"required"`
}

type UpdateCartInput struct {
	Quantity int `json:"qty" binding:"required"`
}

// CartLine is one row of the cart view, joined with live product data.
type CartLine struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
	Qty   int     `json:"qty"`
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		// Name, price and image come from the live product row, not from a
		// snapshot taken at add time.
		lines := make([]CartLine, 0, len(items))
		for _, item := range items {
			lines = append(lines, CartLine{
				ID:    item.ProductID,
				Name:  item.Product.Name,
				Price: item.Product.Price,
				Image: item.Product.Image,
				Qty:   item.Quantity,
			})
		}

		c.JSON(http.StatusOK, lines)
	}
}

// POST /api/cart
//
// Adding is idempotent: a product already in the cart reports "exists" and
// leaves the quantity alone. There is no increment path.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var existing models.CartItem
		if err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&existing).Error; err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "exists"})
			return
		}

		newItem := models.CartItem{
			UserID:    userID,
			ProductID: product.ID,
			Quantity:  1,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&newItem).Error; err != nil {
			// The unique index on (user_id, product_id) catches a concurrent
			// add that slipped past the existence check.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusOK, gin.H{"message": "exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "added", "item": newItem})
	}
}

// PUT /api/cart/:productId
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("productId")

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
			return
		}

		var item models.CartItem
		if err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.Quantity = input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Quantity updated", "item": item})
	}
}

// DELETE /api/cart/:productId
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("productId")

		// Unconditional: removing an absent item still succeeds.
		if err := db.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "removed"})
	}
}

// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
