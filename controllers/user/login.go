package userControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KarthigaP20/seasidewaffle/auth"
	"github.com/KarthigaP20/seasidewaffle/models"
	"github.com/KarthigaP20/seasidewaffle/services"
)

type SendOTPInput struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPInput struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type GoogleLoginInput struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// POST /api/users/send-login-otp
func SendLoginOTP(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SendOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Email not registered. Please signup first."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}

		otp, err := auth.RequestLoginOTP(db, user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate OTP"})
			return
		}

		go func() {
			if err := services.SendOTPEmail(user.Email, otp.Code, auth.OTPTTL); err != nil {
				log.Printf("❌ OTP email to %s failed: %v", user.Email, err)
			}
		}()

		c.JSON(http.StatusOK, gin.H{
			"message":   "OTP sent to your email",
			"otpExpiry": int(auth.OTPTTL.Seconds()),
		})
	}
}

// POST /api/users/verify-login-otp
func VerifyLoginOTP(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and OTP are required"})
			return
		}

		if err := auth.VerifyLoginOTP(db, input.Email, input.OTP); err != nil {
			switch {
			case errors.Is(err, auth.ErrOTPNotRequested),
				errors.Is(err, auth.ErrOTPExpired),
				errors.Is(err, auth.ErrOTPMismatch):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify OTP"})
			}
			return
		}

		issueSession(c, db, input.Email)
	}
}

// POST /api/users/google-login
func GoogleLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GoogleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and name required"})
			return
		}

		issueSession(c, db, input.Email)
	}
}

// issueSession loads the user, re-asserts the admin flag against the
// designated admin email, and returns a signed token. Logging in never
// creates an account.
func issueSession(c *gin.Context, db *gorm.DB, email string) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "This email is not registered. Please signup first."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	// Admin is forced on for the designated email and off for everyone else,
	// on every login.
	if isAdmin := auth.IsAdminEmail(user.Email); isAdmin != user.IsAdmin {
		user.IsAdmin = isAdmin
		if err := db.Model(&user).Update("is_admin", isAdmin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
	}

	token, err := auth.IssueToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":      user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"isAdmin": user.IsAdmin,
		},
		"token": token,
	})
}
