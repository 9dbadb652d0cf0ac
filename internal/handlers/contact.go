package handlers

import (
	"yukmarkazi/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateContactMessage stores a message from the public contact form
func CreateContactMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name        string `json:"name" binding:"required"`
			Email       string `json:"email" binding:"required,email"`
			PhoneNumber string `json:"phoneNumber" binding:"required"`
			Subject     string `json:"subject" binding:"required"`
			Message     string `json:"message" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		message := models.ContactMessage{
			Name:        input.Name,
			Email:       input.Email,
			PhoneNumber: input.PhoneNumber,
			Subject:     input.Subject,
			Message:     input.Message,
			Status:      models.ContactStatusNew,
		}

		if err := db.Create(&message).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to save message"})
			return
		}

		c.JSON(201, gin.H{"message": "Your message has been sent"})
	}
}
