package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/KarthigaP20/seasidewaffle/controllers/order"
	"github.com/KarthigaP20/seasidewaffle/middleware"
)

// SetupOrderRoutes registers all "/api/orders/*" endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Place a new order
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Fetch all orders (admin)
		orders.GET("", middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(db))

		// websocket endpoint for real-time order updates (admin)
		orders.GET("/ws", middleware.RequireAdmin, orderControllers.OrderWebSocketHandler)

		// Fetch orders for a specific user
		orders.GET("/:id", orderControllers.GetUserOrdersHandler(db))

		// Update delivery status (admin)
		orders.PUT("/:id/status", middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(db))
	}
}
