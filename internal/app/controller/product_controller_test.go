package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductControllerTest(t *testing.T) (*ProductController, *gin.Engine, *gorm.DB, *model.Category) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	productRepo := repository.NewProductRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	productService := service.NewProductService(productRepo, categoryRepo, nil)
	productController := NewProductController(productService, nil)

	category := &model.Category{Name: "Sofas", Slug: "sofas", IsActive: true}
	require.NoError(t, testDB.Create(category).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return productController, router, testDB, category
}

func seedProducts(t *testing.T, testDB *gorm.DB, categoryID uint, count int) {
	for i := 0; i < count; i++ {
		product := &model.Product{
			Name:        fmt.Sprintf("Product %02d", i),
			Slug:        fmt.Sprintf("product-%02d", i),
			Description: "d",
			Price:       float64(100 + i),
			CategoryID:  categoryID,
			IsActive:    true,
		}
		require.NoError(t, testDB.Create(product).Error)
	}
}

func TestProductController_ListProducts_Pagination(t *testing.T) {
	controller, router, testDB, category := setupProductControllerTest(t)
	seedProducts(t, testDB, category.ID, 25)

	router.GET("/products", controller.ListProducts)

	req := httptest.NewRequest(http.MethodGet, "/products?page=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	products := response["products"].([]interface{})
	assert.Len(t, products, 12)

	pagination := response["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["current"])
	assert.Equal(t, float64(3), pagination["pages"])
	assert.Equal(t, float64(25), pagination["total"])
}

func TestProductController_ListProducts_FilterByCategory(t *testing.T) {
	controller, router, testDB, category := setupProductControllerTest(t)
	seedProducts(t, testDB, category.ID, 3)

	other := &model.Category{Name: "Tables", Slug: "tables", IsActive: true}
	require.NoError(t, testDB.Create(other).Error)
	require.NoError(t, testDB.Create(&model.Product{
		Name: "Oak Table", Slug: "oak-table", Description: "d",
		Price: 700, CategoryID: other.ID, IsActive: true,
	}).Error)

	router.GET("/products", controller.ListProducts)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/products?category=%d", other.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	products := response["products"].([]interface{})
	require.Len(t, products, 1)

	first := products[0].(map[string]interface{})
	assert.Equal(t, "oak-table", first["slug"])
}

func TestProductController_ListProducts_InvalidCategory(t *testing.T) {
	controller, router, _, _ := setupProductControllerTest(t)

	router.GET("/products", controller.ListProducts)

	req := httptest.NewRequest(http.MethodGet, "/products?category=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductController_GetProductBySlug(t *testing.T) {
	controller, router, testDB, category := setupProductControllerTest(t)
	seedProducts(t, testDB, category.ID, 1)

	router.GET("/products/:slug", controller.GetProductBySlug)

	req := httptest.NewRequest(http.MethodGet, "/products/product-00", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	product := response["product"].(map[string]interface{})
	assert.Equal(t, "Product 00", product["name"])
	require.NotNil(t, product["category"])
}

func TestProductController_GetProductBySlug_NotFound(t *testing.T) {
	controller, router, _, _ := setupProductControllerTest(t)

	router.GET("/products/:slug", controller.GetProductBySlug)

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
