package handlers

import (
	"yukmarkazi/internal/ads"
	"yukmarkazi/internal/models"
	"yukmarkazi/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequestAdvertisement accepts a public advertisement request. The record
// starts under review and inactive; admin-only fields are never accepted
// from this endpoint.
func RequestAdvertisement(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CompanyName  string        `json:"companyName" binding:"required"`
			AdType       models.AdType `json:"adType" binding:"required"`
			DurationDays int           `json:"durationDays" binding:"required"`
			PhoneNumber  string        `json:"phoneNumber" binding:"required"`
			Description  string        `json:"description" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if !models.ValidAdType(input.AdType) {
			c.JSON(400, gin.H{"error": "Invalid advertisement type"})
			return
		}
		if !models.ValidAdDuration(input.DurationDays) {
			c.JSON(400, gin.H{"error": "Duration must be 1, 3, 7, 14 or 30 days"})
			return
		}

		ad := models.Advertisement{
			CompanyName:  input.CompanyName,
			AdType:       input.AdType,
			DurationDays: input.DurationDays,
			PhoneNumber:  input.PhoneNumber,
			Description:  input.Description,
			Status:       models.AdStatusUnderReview,
			IsActive:     false,
		}

		if err := db.Create(&ad).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to save advertisement request"})
			return
		}

		c.JSON(201, gin.H{
			"message":       "Your advertisement request has been received. An administrator will contact you shortly.",
			"advertisement": services.PublicAd(&ad),
		})
	}
}

// GetActiveAdvertisements returns all publicly visible advertisements
func GetActiveAdvertisements(db *gorm.DB, clock ads.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, err := services.ActiveAds(c.Request.Context(), db, clock, "")
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch advertisements"})
			return
		}

		c.JSON(200, listing)
	}
}

// GetAdvertisementsByType returns publicly visible advertisements of a type
func GetAdvertisementsByType(db *gorm.DB, clock ads.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		adType := c.Param("adType")

		listing, err := services.ActiveAds(c.Request.Context(), db, clock, adType)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch advertisements"})
			return
		}

		c.JSON(200, listing)
	}
}
