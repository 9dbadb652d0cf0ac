package handlers

import (
	"errors"
	"time"

	"yukmarkazi/internal/ads"
	"yukmarkazi/internal/models"
	"yukmarkazi/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

func adminAd(ad *models.Advertisement) map[string]interface{} {
	out := services.PublicAd(ad)
	out["adminNotes"] = ad.AdminNotes
	out["updatedAt"] = ad.UpdatedAt
	return out
}

// ListAdvertisements returns all advertisements for admin review, with
// optional status / type / activity filters
func ListAdvertisements(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if adType := c.Query("adType"); adType != "" {
			query = query.Where("ad_type = ?", adType)
		}
		if isActive := c.Query("isActive"); isActive != "" {
			query = query.Where("is_active = ?", isActive == "true")
		}

		var records []models.Advertisement
		if err := query.Find(&records).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch advertisements"})
			return
		}

		listing := make([]map[string]interface{}, 0, len(records))
		for i := range records {
			listing = append(listing, adminAd(&records[i]))
		}

		c.JSON(200, listing)
	}
}

// UpdateAdvertisement applies admin edits to one advertisement. Status and
// activity changes go through the lifecycle operations so the scheduling
// rule fires exactly when it should.
func UpdateAdvertisement(db *gorm.DB, clock ads.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status     *models.AdStatus `json:"status"`
			IsActive   *bool            `json:"isActive"`
			StartDate  *string          `json:"startDate"`
			EndDate    *string          `json:"endDate"`
			AdminNotes *string          `json:"adminNotes"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.Status != nil && !models.ValidAdStatus(*input.Status) {
			c.JSON(400, gin.H{"error": "Invalid status"})
			return
		}

		var newStart, newEnd *time.Time
		if input.StartDate != nil && *input.StartDate != "" {
			parsed, err := time.Parse(dateLayout, *input.StartDate)
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid start date, expected YYYY-MM-DD"})
				return
			}
			newStart = &parsed
		}
		if input.EndDate != nil && *input.EndDate != "" {
			parsed, err := time.Parse(dateLayout, *input.EndDate)
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
				return
			}
			newEnd = &parsed
		}

		var ad models.Advertisement
		if err := db.First(&ad, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Advertisement not found"})
			return
		}

		err := ads.Transition(db, &ad, func(ad *models.Advertisement) {
			// Direct date edits apply first so the scheduling rule sees
			// them and never overwrites an admin-chosen window.
			if input.StartDate != nil {
				ad.StartDate = newStart
			}
			if input.EndDate != nil {
				ad.EndDate = newEnd
			}
			if input.AdminNotes != nil {
				ad.AdminNotes = *input.AdminNotes
			}

			if input.IsActive != nil {
				if *input.IsActive {
					ads.Activate(ad, clock)
				} else {
					ads.Deactivate(ad)
				}
			}

			if input.Status != nil {
				switch *input.Status {
				case models.AdStatusApproved:
					ads.Approve(ad, clock)
				case models.AdStatusRejected:
					ads.Reject(ad)
				default:
					ad.Status = *input.Status
				}
			}
		})
		if errors.Is(err, ads.ErrWindowConflict) {
			c.JSON(409, gin.H{"error": "Advertisement was scheduled by a concurrent update"})
			return
		}
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to update advertisement"})
			return
		}

		services.InvalidateActiveAds(c.Request.Context())

		c.JSON(200, adminAd(&ad))
	}
}

// UploadAdvertisementMedia stores the media file for an advertisement
func UploadAdvertisementMedia(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("media")
		if err != nil {
			c.JSON(400, gin.H{"error": "Media file is required"})
			return
		}

		var ad models.Advertisement
		if err := db.First(&ad, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Advertisement not found"})
			return
		}

		mediaPath, err := services.UploadImage(file, "advertisements")
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to upload media", "details": err.Error()})
			return
		}

		// Only the media column is written, so a concurrent admin edit on
		// the same ad is not clobbered.
		ad.MediaFile = mediaPath
		if err := db.Model(&ad).Update("media_file", mediaPath).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update advertisement"})
			return
		}

		services.InvalidateActiveAds(c.Request.Context())

		c.JSON(200, adminAd(&ad))
	}
}

// BulkAdvertisementAction applies one lifecycle action to many ads.
// Best effort: a failing item is reported but does not roll back the rest.
func BulkAdvertisementAction(db *gorm.DB, clock ads.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Action string `json:"action" binding:"required,oneof=approve reject activate deactivate"`
			IDs    []uint `json:"ids" binding:"required,min=1"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		updated := 0
		failed := make([]gin.H, 0)

		for _, id := range input.IDs {
			var ad models.Advertisement
			if err := db.First(&ad, id).Error; err != nil {
				failed = append(failed, gin.H{"id": id, "error": "not found"})
				continue
			}

			err := ads.Transition(db, &ad, func(ad *models.Advertisement) {
				switch input.Action {
				case "approve":
					ads.Approve(ad, clock)
				case "reject":
					ads.Reject(ad)
				case "activate":
					ads.Activate(ad, clock)
				case "deactivate":
					ads.Deactivate(ad)
				}
			})
			if errors.Is(err, ads.ErrWindowConflict) {
				failed = append(failed, gin.H{"id": id, "error": "scheduled by a concurrent update"})
				continue
			}
			if err != nil {
				failed = append(failed, gin.H{"id": id, "error": "failed to save"})
				continue
			}
			updated++
		}

		services.InvalidateActiveAds(c.Request.Context())

		c.JSON(200, gin.H{
			"updated": updated,
			"failed":  failed,
		})
	}
}
