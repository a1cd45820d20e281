package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/KarthigaP20/seasidewaffle/controllers/admin"
	productcontroller "github.com/KarthigaP20/seasidewaffle/controllers/product"
	"github.com/KarthigaP20/seasidewaffle/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires an admin
// token.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	admin := api.Group("/admin")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		admin.GET("/stats", adminController.GetStats(db))
		admin.GET("/products/export-excel", productcontroller.ExportProductsToExcel(db))
	}
}
