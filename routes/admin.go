package routes

import (
	orderControllers "github.com/gedeon-dev/atelier-api/controllers/order"
	productcontroller "github.com/gedeon-dev/atelier-api/controllers/product"
	userControllers "github.com/gedeon-dev/atelier-api/controllers/user"
	"github.com/gedeon-dev/atelier-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires JWT middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken)
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/orders", orderControllers.GetAllOrders(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}
	}
}
