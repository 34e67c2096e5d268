package orderControllers

import (
	"net/http"
	"time"

	"github.com/gedeon-dev/atelier-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	ProductIDs []uint `json:"product_ids" binding:"required,min=1"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

// -------- Helpers --------

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handlers --------

// POST /api/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", req.UserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		// Every requested product must exist before anything is written.
		wanted := make(map[uint]bool)
		for _, id := range req.ProductIDs {
			wanted[id] = true
		}

		var products []models.Product
		if err := db.Find(&products, req.ProductIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if len(products) != len(wanted) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "One or more products do not exist"})
			return
		}

		order := models.Order{
			Reference: generateOrderRef(),
			UserID:    user.ID,
			Quantity:  req.Quantity,
			Products:  products,
		}

		// Create persists the order row and the order_products rows together.
		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		order.User = user
		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := []models.Order{}
		if err := db.
			Preload("User").
			Preload("Products").
			Order("created_at desc").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("User").
			Preload("Products").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
