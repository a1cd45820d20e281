package productcontroller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/KarthigaP20/seasidewaffle/auth"
	"github.com/KarthigaP20/seasidewaffle/models"
	"github.com/KarthigaP20/seasidewaffle/routes"
)

func setupProductTest(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.LoginOTP{},
	))

	admin := models.User{ID: "admin-1", Name: "Boss", Email: "seasidewaffle@gmail.com", Password: "x", IsAdmin: true}
	require.NoError(t, db.Create(&admin).Error)
	token, err := auth.IssueToken(&admin)
	require.NoError(t, err)

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db, token
}

func request(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct(t *testing.T) {
	r, db, token := setupProductTest(t)

	w := request(t, r, http.MethodPost, "/api/products", token, gin.H{
		"name":        "Choco Waffle",
		"price":       5.5,
		"description": "Belgian waffle with chocolate",
		"ingredients": []string{"flour", "cocoa", "butter"},
		"featured":    true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var p models.Product
	require.NoError(t, db.First(&p).Error)
	assert.Equal(t, "Choco Waffle", p.Name)
	assert.Equal(t, 5.5, p.Price)
	assert.Equal(t, "General", p.Category)
	assert.Equal(t, []string{"flour", "cocoa", "butter"}, p.Ingredients)
	assert.True(t, p.Featured)
	assert.True(t, p.Available)

	// Missing required fields
	w = request(t, r, http.MethodPost, "/api/products", token, gin.H{"name": "No price"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative price
	w = request(t, r, http.MethodPost, "/api/products", token, gin.H{"name": "Negative", "price": -1.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogMutationRequiresAdmin(t *testing.T) {
	r, db, _ := setupProductTest(t)

	user := models.User{ID: "user-1", Name: "Pia", Email: "pia@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	userToken, err := auth.IssueToken(&user)
	require.NoError(t, err)

	w := request(t, r, http.MethodPost, "/api/products", userToken, gin.H{"name": "X", "price": 1.0})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(t, r, http.MethodPost, "/api/products", "", gin.H{"name": "X", "price": 1.0})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListAndFeaturedProducts(t *testing.T) {
	r, db, _ := setupProductTest(t)

	require.NoError(t, db.Create(&models.Product{Name: "Plain", Price: 3}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Special", Price: 6, Featured: true}).Error)

	w := request(t, r, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	w = request(t, r, http.MethodGet, "/api/products/featured", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var featured []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &featured))
	require.Len(t, featured, 1)
	assert.Equal(t, "Special", featured[0].Name)
}

func TestGetProductByID(t *testing.T) {
	r, db, _ := setupProductTest(t)

	p := models.Product{Name: "Plain", Price: 3}
	require.NoError(t, db.Create(&p).Error)

	w := request(t, r, http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Plain")

	w = request(t, r, http.MethodGet, "/api/products/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, r, http.MethodGet, "/api/products/not-a-number", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductPartial(t *testing.T) {
	r, db, token := setupProductTest(t)

	p := models.Product{Name: "Plain", Price: 3, Description: "keep me"}
	require.NoError(t, db.Create(&p).Error)

	w := request(t, r, http.MethodPut, fmt.Sprintf("/api/products/%d", p.ID), token, gin.H{
		"price":    4.5,
		"featured": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, db.First(&p, p.ID).Error)
	assert.Equal(t, 4.5, p.Price)
	assert.True(t, p.Featured)
	assert.Equal(t, "Plain", p.Name)
	assert.Equal(t, "keep me", p.Description)

	w = request(t, r, http.MethodPut, "/api/products/999", token, gin.H{"price": 1.0})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	r, db, token := setupProductTest(t)

	p := models.Product{Name: "Plain", Price: 3}
	require.NoError(t, db.Create(&p).Error)

	w := request(t, r, http.MethodDelete, fmt.Sprintf("/api/products/%d", p.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = request(t, r, http.MethodDelete, fmt.Sprintf("/api/products/%d", p.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportProductsToExcel(t *testing.T) {
	r, db, token := setupProductTest(t)

	require.NoError(t, db.Create(&models.Product{Name: "Plain", Price: 3, Category: "Waffles"}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Berry Waffle", Price: 6}).Error)

	w := request(t, r, http.MethodGet, "/api/admin/products/export-excel", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=products.xlsx", w.Header().Get("Content-Disposition"))

	// The body must be a readable workbook, header row plus one row per product
	file, err := xlsx.OpenBinary(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Products", sheet.Name)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "Name", sheet.Rows[0].Cells[1].Value)
	assert.Equal(t, "Plain", sheet.Rows[1].Cells[1].Value)
	assert.Equal(t, "Waffles", sheet.Rows[1].Cells[3].Value)
	assert.Equal(t, "Berry Waffle", sheet.Rows[2].Cells[1].Value)
}
