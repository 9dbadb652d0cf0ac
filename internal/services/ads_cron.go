package services

import (
	"log"

	"yukmarkazi/internal/ads"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartAdsCron keeps the public advertisement cache warm. Listings cross
// their window boundaries at midnight without any admin action, so the cache
// is rebuilt on a schedule rather than only on mutation.
func StartAdsCron(db *gorm.DB, clock ads.Clock) *cron.Cron {
	c := cron.New()

	c.AddFunc("@every 10m", func() {
		if err := RefreshActiveAds(db, clock); err != nil {
			log.Printf("ads cron: failed to refresh active advertisements: %v", err)
		}
	})

	c.Start()
	return c
}
