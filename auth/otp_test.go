package auth

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KarthigaP20/seasidewaffle/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.LoginOTP{}))
	return db
}

func TestRequestLoginOTPGeneratesSixDigits(t *testing.T) {
	db := newTestDB(t)

	otp, err := RequestLoginOTP(db, "pia@example.com")
	require.NoError(t, err)
	assert.Len(t, otp.Code, 6)
	assert.True(t, otp.ExpiresAt.After(time.Now()))
}

func TestRequestLoginOTPReplacesExisting(t *testing.T) {
	db := newTestDB(t)

	_, err := RequestLoginOTP(db, "pia@example.com")
	require.NoError(t, err)
	second, err := RequestLoginOTP(db, "pia@example.com")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.LoginOTP{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Only the latest code verifies
	require.NoError(t, VerifyLoginOTP(db, "pia@example.com", second.Code))
}

func TestVerifyLoginOTPStates(t *testing.T) {
	db := newTestDB(t)

	err := VerifyLoginOTP(db, "pia@example.com", "123456")
	assert.ErrorIs(t, err, ErrOTPNotRequested)

	otp, err := RequestLoginOTP(db, "pia@example.com")
	require.NoError(t, err)

	wrong := "000000"
	if otp.Code == wrong {
		wrong = "111111"
	}
	assert.ErrorIs(t, VerifyLoginOTP(db, "pia@example.com", wrong), ErrOTPMismatch)

	// Success consumes the code
	require.NoError(t, VerifyLoginOTP(db, "pia@example.com", otp.Code))
	assert.ErrorIs(t, VerifyLoginOTP(db, "pia@example.com", otp.Code), ErrOTPNotRequested)
}

func TestVerifyLoginOTPExpiryConsumesCode(t *testing.T) {
	db := newTestDB(t)

	otp, err := RequestLoginOTP(db, "pia@example.com")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.LoginOTP{}).
		Where("email = ?", otp.Email).
		Update("expires_at", time.Now().Add(-time.Second)).Error)

	assert.ErrorIs(t, VerifyLoginOTP(db, "pia@example.com", otp.Code), ErrOTPExpired)
	// The expired row is gone
	assert.ErrorIs(t, VerifyLoginOTP(db, "pia@example.com", otp.Code), ErrOTPNotRequested)
}

func TestIsAdminEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "boss@example.com")
	assert.True(t, IsAdminEmail("boss@example.com"))
	assert.True(t, IsAdminEmail("Boss@Example.com"))
	assert.False(t, IsAdminEmail("pia@example.com"))
}
