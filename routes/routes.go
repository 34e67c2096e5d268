package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the API, Auth, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public API routes
	SetupAPIRoutes(r, db)

	// Auth routes (token issuance, no middleware)
	SetupAuthRoutes(r, db)

	// Admin routes (JWT-protected)
	SetupAdminRoutes(r, db)
}
