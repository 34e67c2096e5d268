package clientControllers

import (
	"net/http"

	"github.com/gedeon-dev/atelier-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

type CreateArchitectRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

type AssignArchitectRequest struct {
	ClientID    uint `json:"client_id" binding:"required"`
	ArchitectID uint `json:"architect_id" binding:"required"`
}

// -------- Handlers --------

// GET /api/clients
func GetAllClients(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clients := []models.Client{}
		if err := db.Preload("Architect").Find(&clients).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients"})
			return
		}

		c.JSON(http.StatusOK, clients)
	}
}

// POST /api/clients
func CreateClient(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateClientRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		client := models.Client{Name: req.Name, Email: req.Email}
		if err := db.Create(&client).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
			return
		}

		c.JSON(http.StatusCreated, client)
	}
}

// GET /api/architects
func GetAllArchitects(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		architects := []models.Architect{}
		if err := db.Preload("Clients").Find(&architects).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch architects"})
			return
		}

		c.JSON(http.StatusOK, architects)
	}
}

// POST /api/architects
func CreateArchitect(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateArchitectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		architect := models.Architect{Name: req.Name, Email: req.Email}
		if err := db.Create(&architect).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create architect"})
			return
		}

		c.JSON(http.StatusCreated, architect)
	}
}

// POST /api/clients/assign
func AssignArchitect(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AssignArchitectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var client models.Client
		if err := db.First(&client, "id = ?", req.ClientID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}

		var architect models.Architect
		if err := db.First(&architect, "id = ?", req.ArchitectID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Architect not found"})
			return
		}

		client.ArchitectID = &architect.ID
		if err := db.Save(&client).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign architect"})
			return
		}

		client.Architect = &architect
		c.JSON(http.StatusOK, client)
	}
}
