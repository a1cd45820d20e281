package uploadController_test

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KarthigaP20/seasidewaffle/auth"
	"github.com/KarthigaP20/seasidewaffle/models"
	"github.com/KarthigaP20/seasidewaffle/routes"
)

func setupUploadTest(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	admin := models.User{ID: "admin-1", Name: "Boss", Email: "seasidewaffle@gmail.com", Password: "x", IsAdmin: true}
	require.NoError(t, db.Create(&admin).Error)
	token, err := auth.IssueToken(&admin)
	require.NoError(t, err)

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, token
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadProductImage(t *testing.T) {
	r, token := setupUploadTest(t)

	body, contentType := multipartUpload(t, "waffle.png", tinyPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/product", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "/uploads/")

	// Image and thumbnail landed on disk
	entries, err := os.ReadDir(os.Getenv("UPLOAD_DIR"))
	require.NoError(t, err)
	var thumbs, images int
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".png" {
			if len(e.Name()) > 6 && e.Name()[:6] == "thumb_" {
				thumbs++
			} else {
				images++
			}
		}
	}
	assert.Equal(t, 1, images)
	assert.Equal(t, 1, thumbs)
}

func TestUploadRejectsBadExtension(t *testing.T) {
	r, token := setupUploadTest(t)

	body, contentType := multipartUpload(t, "notes.txt", []byte("not an image"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload/product", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRequiresFile(t *testing.T) {
	r, token := setupUploadTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload/product", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
