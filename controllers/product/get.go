package productcontroller

import (
	"net/http"

	"github.com/gedeon-dev/atelier-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
