package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gedeon-dev/atelier-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders", GetAllOrders(db))
	r.POST("/api/orders", CreateOrder(db))
	r.GET("/api/orders/:id", GetOrderByID(db))
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getJSON(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedUserAndProducts(t *testing.T, db *gorm.DB) (models.User, []models.Product) {
	t.Helper()

	user := models.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, db.Create(&user).Error)

	products := []models.Product{
		{Name: "Drafting Table", Price: 349.90},
		{Name: "Blueprint Roll", Price: 12.50},
	}
	require.NoError(t, db.Create(&products).Error)

	return user, products
}

func TestCreateOrder(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	user, products := seedUserAndProducts(t, db)

	w := postJSON(r, "/api/orders", gin.H{
		"user_id":     user.ID,
		"product_ids": []uint{products[0].ID, products[1].ID},
		"quantity":    3,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotZero(t, got.ID)
	assert.NotEmpty(t, got.Reference)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, 3, got.Quantity)
	require.Len(t, got.Products, 2)

	gotIDs := []uint{got.Products[0].ID, got.Products[1].ID}
	assert.ElementsMatch(t, []uint{products[0].ID, products[1].ID}, gotIDs)

	// Association rows must be persisted, not just serialized
	var stored models.Order
	require.NoError(t, db.Preload("Products").First(&stored, got.ID).Error)
	assert.Len(t, stored.Products, 2)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	user, products := seedUserAndProducts(t, db)

	w := postJSON(r, "/api/orders", gin.H{
		"user_id":     user.ID,
		"product_ids": []uint{products[0].ID, 9999},
		"quantity":    1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count, "no order row should be written")
}

func TestCreateOrderUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	_, products := seedUserAndProducts(t, db)

	w := postJSON(r, "/api/orders", gin.H{
		"user_id":     9999,
		"product_ids": []uint{products[0].ID},
		"quantity":    1,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderMissingFields(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	user, _ := seedUserAndProducts(t, db)

	// empty product list
	w := postJSON(r, "/api/orders", gin.H{
		"user_id":     user.ID,
		"product_ids": []uint{},
		"quantity":    1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// quantity missing
	w = postJSON(r, "/api/orders", gin.H{
		"user_id":     user.ID,
		"product_ids": []uint{1},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := getJSON(r, "/api/orders/4242")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersEmpty(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := getJSON(r, "/api/orders")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetOrderByID(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	user, products := seedUserAndProducts(t, db)

	w := postJSON(r, "/api/orders", gin.H{
		"user_id":     user.ID,
		"product_ids": []uint{products[1].ID},
		"quantity":    2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = getJSON(r, fmt.Sprintf("/api/orders/%d", created.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, user.Email, got.User.Email)
	require.Len(t, got.Products, 1)
	assert.Equal(t, products[1].Name, got.Products[0].Name)
}
