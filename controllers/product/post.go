package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KarthigaP20/seasidewaffle/models"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Featured    bool     `json:"featured"`
	Available   *bool    `json:"available"`
}

// CreateProduct creates a new product.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}
		if *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}

		category := input.Category
		if category == "" {
			category = "General"
		}
		available := true
		if input.Available != nil {
			available = *input.Available
		}
		ingredients := input.Ingredients
		if ingredients == nil {
			ingredients = []string{}
		}

		product := models.Product{
			Name:        input.Name,
			Price:       *input.Price,
			Category:    category,
			Image:       input.Image,
			Description: input.Description,
			Ingredients: ingredients,
			Featured:    input.Featured,
			Available:   available,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
