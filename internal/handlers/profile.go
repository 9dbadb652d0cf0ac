package handlers

import (
	"yukmarkazi/internal/models"
	"yukmarkazi/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func profileResponse(profile *models.DriverProfile) gin.H {
	return gin.H{
		"id":              profile.ID,
		"userId":          profile.UserID,
		"name":            profile.User.Name,
		"phoneNumber":     profile.User.PhoneNumber,
		"profilePicture":  services.GetImageURL(profile.ProfilePicture),
		"vehicleType":     profile.VehicleType,
		"licenseType":     profile.LicenseType,
		"vehicleCapacity": profile.VehicleCapacity,
		"experience":      profile.Experience,
	}
}

// GetProfile retrieves the caller's driver profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var profile models.DriverProfile
		if err := db.Preload("User").Where("user_id = ?", userId).First(&profile).Error; err != nil {
			c.JSON(404, gin.H{"error": "Profile not found"})
			return
		}

		c.JSON(200, profileResponse(&profile))
	}
}

// UpdateProfile updates the caller's driver profile information
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			VehicleType     *string  `json:"vehicleType"`
			LicenseType     *string  `json:"licenseType"`
			VehicleCapacity *float64 `json:"vehicleCapacity"`
			Experience      *int     `json:"experience"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var profile models.DriverProfile
		if err := db.Preload("User").Where("user_id = ?", userId).First(&profile).Error; err != nil {
			c.JSON(404, gin.H{"error": "Profile not found"})
			return
		}

		// Update fields individually to handle empty values properly
		if input.VehicleType != nil {
			profile.VehicleType = *input.VehicleType
		}
		if input.LicenseType != nil {
			profile.LicenseType = *input.LicenseType
		}
		if input.VehicleCapacity != nil {
			profile.VehicleCapacity = *input.VehicleCapacity
		}
		if input.Experience != nil {
			profile.Experience = *input.Experience
		}

		if err := db.Save(&profile).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(200, profileResponse(&profile))
	}
}

// UploadProfilePicture stores a new profile picture for the caller
func UploadProfilePicture(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		file, err := c.FormFile("picture")
		if err != nil {
			c.JSON(400, gin.H{"error": "Picture file is required"})
			return
		}

		var profile models.DriverProfile
		if err := db.Preload("User").Where("user_id = ?", userId).First(&profile).Error; err != nil {
			c.JSON(404, gin.H{"error": "Profile not found"})
			return
		}

		imagePath, err := services.UploadImage(file, "profiles")
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to upload picture", "details": err.Error()})
			return
		}

		profile.ProfilePicture = imagePath
		if err := db.Save(&profile).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(200, profileResponse(&profile))
	}
}
