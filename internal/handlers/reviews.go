package handlers

import (
	"yukmarkazi/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateReview adds a review to a cargo
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			CargoID uint   `json:"cargoId" binding:"required"`
			Comment string `json:"comment" binding:"required"`
			Stars   int    `json:"stars" binding:"gte=0,lte=5"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var cargo models.Cargo
		if err := db.First(&cargo, input.CargoID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Cargo not found"})
			return
		}

		review := models.CargoReview{
			CargoID:    input.CargoID,
			CustomerID: userId,
			Comment:    input.Comment,
			Stars:      input.Stars,
		}

		if err := db.Create(&review).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create review"})
			return
		}

		c.JSON(201, review)
	}
}
