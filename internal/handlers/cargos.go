package handlers

import (
	"encoding/json"
	"errors"

	"yukmarkazi/internal/assignment"
	"yukmarkazi/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCargos retrieves all cargos with their customers, drivers and reviews
func GetCargos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cargos []models.Cargo
		if err := db.Preload("Customer").
			Preload("Driver").
			Preload("Driver.User").
			Preload("Reviews").
			Order("created_at DESC").
			Find(&cargos).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch cargos"})
			return
		}

		c.JSON(200, cargos)
	}
}

// CreateCargo handles the creation of a new cargo by a customer
func CreateCargo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			Name        string             `json:"name" binding:"required"`
			Weight      float64            `json:"weight" binding:"required"`
			Origin      string             `json:"origin" binding:"required"`
			Destination string             `json:"destination" binding:"required"`
			VehicleType models.VehicleType `json:"vehicleType"`
			Price       *float64           `json:"price"`
			Description string             `json:"description"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.VehicleType == "" {
			input.VehicleType = models.VehicleBortli
		}
		if !models.ValidVehicleType(input.VehicleType) {
			c.JSON(400, gin.H{"error": "Invalid vehicle type"})
			return
		}

		cargo := models.Cargo{
			CustomerID:  userId,
			Name:        input.Name,
			Weight:      input.Weight,
			Origin:      input.Origin,
			Destination: input.Destination,
			VehicleType: input.VehicleType,
			Status:      models.CargoStatusInProgress,
			Price:       input.Price,
			Description: input.Description,
		}

		if err := db.Create(&cargo).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create cargo"})
			return
		}

		c.JSON(201, cargo)
	}
}

// GetCargo retrieves a single cargo
func GetCargo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cargo models.Cargo
		if err := db.Preload("Customer").
			Preload("Driver").
			Preload("Driver.User").
			Preload("Reviews").
			First(&cargo, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Cargo not found"})
			return
		}

		c.JSON(200, cargo)
	}
}

// UpdateCargo routes a PUT to the capability the caller holds: a driver
// hitting an unclaimed cargo claims it, the owner edits it, anyone else is
// rejected.
func UpdateCargo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var cargo models.Cargo
		if err := db.First(&cargo, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Cargo not found"})
			return
		}

		var profile models.DriverProfile
		isDriver := db.Where("user_id = ?", userId).First(&profile).Error == nil

		switch assignment.Decide(&cargo, userId, isDriver) {
		case assignment.CapabilityClaim:
			if err := assignment.Claim(db, &cargo, &profile); err != nil {
				if errors.Is(err, assignment.ErrAlreadyAssigned) {
					c.JSON(409, gin.H{"error": "Cargo already has a driver"})
					return
				}
				c.JSON(500, gin.H{"error": "Failed to claim cargo"})
				return
			}

		case assignment.CapabilityOwner:
			var payload map[string]json.RawMessage
			if err := c.ShouldBindJSON(&payload); err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
			if err := assignment.ApplyPatch(&cargo, payload); err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
			if err := db.Save(&cargo).Error; err != nil {
				c.JSON(500, gin.H{"error": "Failed to update cargo"})
				return
			}

		default:
			c.JSON(403, gin.H{"error": "Not allowed"})
			return
		}

		if err := db.Preload("Customer").
			Preload("Driver").
			Preload("Driver.User").
			Preload("Reviews").
			First(&cargo, cargo.ID).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to reload cargo"})
			return
		}

		c.JSON(200, cargo)
	}
}

// DeleteCargo removes a cargo; only its customer may do this
func DeleteCargo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var cargo models.Cargo
		if err := db.First(&cargo, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Cargo not found"})
			return
		}

		if cargo.CustomerID != userId {
			c.JSON(403, gin.H{"error": "Not allowed"})
			return
		}

		if err := db.Delete(&cargo).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete cargo"})
			return
		}

		c.Status(204)
	}
}
