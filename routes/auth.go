package routes

import (
	"github.com/gedeon-dev/atelier-api/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/token", auth.IssueToken(db))
	}
}
