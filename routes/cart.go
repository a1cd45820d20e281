package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/KarthigaP20/seasidewaffle/controllers/cart"
	"github.com/KarthigaP20/seasidewaffle/middleware"
)

// SetupCartRoutes registers all "/api/cart/*" endpoints. Requires JWT.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.AddToCart(db))
		cart.PUT("/:productId", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:productId", cartControllers.RemoveFromCart(db))
		cart.DELETE("", cartControllers.ClearCart(db))
	}
}
