package ads

import (
	"errors"

	"yukmarkazi/internal/models"

	"gorm.io/gorm"
)

// ErrWindowConflict means a concurrent edit scheduled the ad first.
var ErrWindowConflict = errors.New("visibility window already scheduled")

// Transition applies mutate to the ad and persists the lifecycle columns in
// one transaction. When mutate schedules the visibility window, the write is
// guarded on the dates still being empty, so of two concurrent edits exactly
// one schedules the ad and the loser gets ErrWindowConflict with nothing
// written. The media file is not part of the update set, so an upload racing
// an admin edit survives it.
func Transition(db *gorm.DB, ad *models.Advertisement, mutate func(*models.Advertisement)) error {
	hadWindow := ad.StartDate != nil
	mutate(ad)
	schedules := !hadWindow && ad.StartDate != nil

	updates := map[string]interface{}{
		"status":      ad.Status,
		"is_active":   ad.IsActive,
		"start_date":  ad.StartDate,
		"end_date":    ad.EndDate,
		"admin_notes": ad.AdminNotes,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Advertisement{}).Where("id = ?", ad.ID)
		if schedules {
			query = query.Where("start_date IS NULL")
		}
		res := query.Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if schedules && res.RowsAffected == 0 {
			return ErrWindowConflict
		}
		return nil
	})
}
