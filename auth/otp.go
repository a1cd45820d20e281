package auth

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KarthigaP20/seasidewaffle/models"
)

// OTPTTL is how long a login code stays valid after it is issued.
const OTPTTL = 50 * time.Second

var (
	ErrOTPNotRequested = errors.New("no OTP requested for this email")
	ErrOTPExpired      = errors.New("OTP expired")
	ErrOTPMismatch     = errors.New("invalid OTP")
)

// RequestLoginOTP stores a fresh 6-digit code for the email, overwriting any
// previous one. Re-requesting simply restarts the expiry window.
func RequestLoginOTP(db *gorm.DB, email string) (models.LoginOTP, error) {
	otp := models.LoginOTP{
		Email:     email,
		Code:      generateCode(),
		ExpiresAt: time.Now().Add(OTPTTL),
	}
	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&otp).Error
	return otp, err
}

// VerifyLoginOTP checks the submitted code and consumes it. An expired code
// is deleted so it cannot be retried after the window closes.
func VerifyLoginOTP(db *gorm.DB, email, code string) error {
	var rec models.LoginOTP
	if err := db.First(&rec, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOTPNotRequested
		}
		return err
	}

	if time.Now().After(rec.ExpiresAt) {
		db.Delete(&rec)
		return ErrOTPExpired
	}
	if rec.Code != code {
		return ErrOTPMismatch
	}

	return db.Delete(&rec).Error
}

func generateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "000000"
	}
	return strconv.FormatInt(n.Int64()+100000, 10)
}
