package services

import (
	"context"

	"yukmarkazi/internal/ads"
	"yukmarkazi/internal/models"

	"gorm.io/gorm"
)

// PublicAd serializes an advertisement for public listings. Admin notes are
// never included.
func PublicAd(ad *models.Advertisement) map[string]interface{} {
	return map[string]interface{}{
		"id":           ad.ID,
		"companyName":  ad.CompanyName,
		"adType":       ad.AdType,
		"durationDays": ad.DurationDays,
		"phoneNumber":  ad.PhoneNumber,
		"description":  ad.Description,
		"status":       ad.Status,
		"isActive":     ad.IsActive,
		"createdAt":    ad.CreatedAt,
		"mediaFile":    GetImageURL(ad.MediaFile),
		"startDate":    ad.StartDate,
		"endDate":      ad.EndDate,
	}
}

// ActiveAds returns the publicly visible advertisements, optionally filtered
// by type, serving from the Redis cache when possible.
func ActiveAds(ctx context.Context, db *gorm.DB, clock ads.Clock, adType string) ([]map[string]interface{}, error) {
	if cached, ok := GetCachedActiveAds(ctx, adType); ok {
		return cached, nil
	}

	query := db.Scopes(ads.VisibleScope(clock))
	if adType != "" {
		query = query.Where("ad_type = ?", adType)
	}

	var records []models.Advertisement
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	listing := make([]map[string]interface{}, 0, len(records))
	for i := range records {
		listing = append(listing, PublicAd(&records[i]))
	}

	// Best effort; a cache write failure never breaks the listing.
	_ = CacheActiveAds(ctx, adType, listing)

	return listing, nil
}

// RefreshActiveAds recomputes the cached base listing. Per-type listings are
// dropped and rebuilt lazily on the next request.
func RefreshActiveAds(db *gorm.DB, clock ads.Clock) error {
	ctx := context.Background()
	InvalidateActiveAds(ctx)
	_, err := ActiveAds(ctx, db, clock, "")
	return err
}
