package productcontroller

import (
	"net/http"

	"github.com/gedeon-dev/atelier-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := []models.Product{}
		if err := db.Order("id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
