package auth

import (
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/KarthigaP20/seasidewaffle/models"
)

const defaultAdminEmail = "seasidewaffle@gmail.com"

// AdminEmail returns the single email address allowed to hold the admin flag.
func AdminEmail() string {
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		return strings.ToLower(v)
	}
	return defaultAdminEmail
}

// IsAdminEmail reports whether the given email is the designated admin account.
func IsAdminEmail(email string) bool {
	return strings.ToLower(email) == AdminEmail()
}

// IssueToken signs a session token carrying the user id and admin flag.
func IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
