package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KarthigaP20/seasidewaffle/models"
)

// GET /api/admin/stats
//
// Raw table counts for the dashboard tiles. No pagination or time windows.
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users, orders, products int64

		if err := db.Model(&models.User{}).Count(&users).Error; err != nil {
			log.Println("❌ Failed to count users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&orders).Error; err != nil {
			log.Println("❌ Failed to count orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&products).Error; err != nil {
			log.Println("❌ Failed to count products:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"users":    users,
			"orders":   orders,
			"products": products,
		})
	}
}
