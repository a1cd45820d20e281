package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/KarthigaP20/seasidewaffle/controllers/product"
	"github.com/KarthigaP20/seasidewaffle/middleware"
)

// SetupProductRoutes registers all "/api/products/*" endpoints. Reads are
// public; catalog mutation requires the admin token.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		// The featured route goes before the dynamic :id route
		products.GET("/featured", productcontroller.GetFeaturedProducts(db))

		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))

		products.POST("", middleware.ValidateToken, middleware.RequireAdmin, productcontroller.CreateProduct(db))
		products.PUT("/:id", middleware.ValidateToken, middleware.RequireAdmin, productcontroller.UpdateProduct(db))
		products.DELETE("/:id", middleware.ValidateToken, middleware.RequireAdmin, productcontroller.DeleteProduct(db))
	}
}
