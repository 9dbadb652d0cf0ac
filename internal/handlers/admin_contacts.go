package handlers

import (
	"yukmarkazi/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListContactMessages returns the contact inbox, optionally filtered by status
func ListContactMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var messages []models.ContactMessage
		if err := query.Find(&messages).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch messages"})
			return
		}

		c.JSON(200, messages)
	}
}

// UpdateContactMessage changes the triage status of one message
func UpdateContactMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status models.ContactStatus `json:"status" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if !models.ValidContactStatus(input.Status) {
			c.JSON(400, gin.H{"error": "Invalid status"})
			return
		}

		var message models.ContactMessage
		if err := db.First(&message, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Message not found"})
			return
		}

		message.Status = input.Status
		if err := db.Save(&message).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update message"})
			return
		}

		c.JSON(200, message)
	}
}
