package routes

import (
	clientControllers "github.com/gedeon-dev/atelier-api/controllers/client"
	orderControllers "github.com/gedeon-dev/atelier-api/controllers/order"
	productcontroller "github.com/gedeon-dev/atelier-api/controllers/product"
	userControllers "github.com/gedeon-dev/atelier-api/controllers/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAPIRoutes registers all "/api/*" endpoints.
func SetupAPIRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		// ─────────── Users ───────────
		users := api.Group("/users")
		{
			users.GET("", userControllers.GetAllUsers(db))
			users.POST("", userControllers.CreateUser(db))
			users.GET("/:id", userControllers.GetUserByID(db))
		}

		// ─────────── Products ───────────
		products := api.Group("/products")
		{
			products.GET("", productcontroller.GetProducts(db))
			products.POST("", productcontroller.CreateProduct(db))
			products.GET("/:id", productcontroller.GetProductByID(db))
		}

		// ─────────── Orders ───────────
		orders := api.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrders(db))
			orders.POST("", orderControllers.CreateOrder(db))
			orders.GET("/:id", orderControllers.GetOrderByID(db))

			// websocket endpoint for real-time order updates
			orders.GET("/ws", orderControllers.OrderFeedHandler)
		}

		// ─────────── Clients & Architects ───────────
		clients := api.Group("/clients")
		{
			clients.GET("", clientControllers.GetAllClients(db))
			clients.POST("", clientControllers.CreateClient(db))
			clients.POST("/assign", clientControllers.AssignArchitect(db))
		}

		architects := api.Group("/architects")
		{
			architects.GET("", clientControllers.GetAllArchitects(db))
			architects.POST("", clientControllers.CreateArchitect(db))
		}
	}
}
