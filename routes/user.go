package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/KarthigaP20/seasidewaffle/controllers/user"
	"github.com/KarthigaP20/seasidewaffle/middleware"
)

// SetupUserRoutes registers all "/api/users/*" endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/users")
	{
		// ──────────────── Public: signup & login ────────────────
		users.GET("/check-email", userControllers.CheckEmail(db))
		users.POST("/register", userControllers.Register(db))
		users.POST("/send-login-otp", userControllers.SendLoginOTP(db))
		users.POST("/verify-login-otp", userControllers.VerifyLoginOTP(db))
		users.POST("/google-login", userControllers.GoogleLogin(db))

		// ──────────────── Profile (JWT) ────────────────
		users.GET("/me", middleware.ValidateToken, userControllers.GetMe(db))
		users.PATCH("/update-personal", middleware.ValidateToken, userControllers.UpdatePersonal(db))
		users.PATCH("/update-address", middleware.ValidateToken, userControllers.UpdateAddress(db))
		users.GET("/:id/favorites", middleware.ValidateToken, userControllers.GetFavorites(db))
		users.PUT("/:id/favorites", middleware.ValidateToken, userControllers.UpdateFavorites(db))

		// ──────────────── User management (admin) ────────────────
		users.GET("", middleware.ValidateToken, middleware.RequireAdmin, userControllers.GetAllUsers(db))
		users.DELETE("/:id", middleware.ValidateToken, userControllers.DeleteUser(db))
	}
}
