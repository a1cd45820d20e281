package routes

import (
	"github.com/gin-gonic/gin"

	uploadController "github.com/KarthigaP20/seasidewaffle/controllers/upload"
	"github.com/KarthigaP20/seasidewaffle/middleware"
)

// SetupUploadRoutes registers the image upload endpoint. Only the admin
// uploads product images.
func SetupUploadRoutes(api *gin.RouterGroup) {
	upload := api.Group("/upload")
	upload.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		upload.POST("/product", uploadController.UploadProductImage())
	}
}
