package ads

import (
	"time"

	"yukmarkazi/internal/models"

	"gorm.io/gorm"
)

// Schedule sets the visibility window when the ad has been approved,
// switched active and has no start date yet. The window is computed at most
// once: an existing start date is never recomputed, so re-approving or
// re-activating an ad reuses its original window.
func Schedule(ad *models.Advertisement, clock Clock) {
	if ad.Status != models.AdStatusApproved || !ad.IsActive || ad.StartDate != nil {
		return
	}
	start := clock.Today()
	end := start.AddDate(0, 0, ad.DurationDays)
	ad.StartDate = &start
	ad.EndDate = &end
}

// Approve marks the ad approved and schedules its window if it is already
// active.
func Approve(ad *models.Advertisement, clock Clock) {
	ad.Status = models.AdStatusApproved
	Schedule(ad, clock)
}

// Reject marks the ad rejected. IsActive and the window are left as they
// were; a rejected ad disappears from public listings anyway because
// visibility requires approved status.
func Reject(ad *models.Advertisement) {
	ad.Status = models.AdStatusRejected
}

// Activate switches the ad on and schedules its window if it is already
// approved.
func Activate(ad *models.Advertisement, clock Clock) {
	ad.IsActive = true
	Schedule(ad, clock)
}

// Deactivate switches the ad off. The window stays; reactivating later
// reuses it.
func Deactivate(ad *models.Advertisement) {
	ad.IsActive = false
}

// Visible reports whether the ad may be shown publicly on the given day.
// The end date is inclusive: an ad is still visible on its last day.
func Visible(ad *models.Advertisement, today time.Time) bool {
	if ad.Status != models.AdStatusApproved || !ad.IsActive || ad.MediaFile == "" {
		return false
	}
	if ad.StartDate == nil || ad.EndDate == nil {
		return false
	}
	return !ad.StartDate.After(today) && !ad.EndDate.Before(today)
}

// VisibleScope is the query form of Visible, for public listing endpoints.
func VisibleScope(clock Clock) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		today := clock.Today()
		return db.Where(
			"status = ? AND is_active = ? AND media_file <> '' AND start_date <= ? AND end_date >= ?",
			models.AdStatusApproved, true, today, today,
		)
	}
}
