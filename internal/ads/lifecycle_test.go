package ads

import (
	"testing"
	"time"

	"yukmarkazi/internal/models"

	"github.com/stretchr/testify/assert"
)

var day = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func newAd(duration int) *models.Advertisement {
	return &models.Advertisement{
		CompanyName:  "Yuk Trans",
		AdType:       models.AdTypeNative,
		DurationDays: duration,
		PhoneNumber:  "+998901234567",
		Description:  "Cargo transport services",
		Status:       models.AdStatusUnderReview,
	}
}

func TestApproveSchedulesWindow(t *testing.T) {
	clock := FixedClock{Date: day}

	for _, duration := range []int{1, 3, 7, 14, 30} {
		ad := newAd(duration)
		ad.IsActive = true

		Approve(ad, clock)

		assert.Equal(t, models.AdStatusApproved, ad.Status)
		if assert.NotNil(t, ad.StartDate) && assert.NotNil(t, ad.EndDate) {
			assert.Equal(t, day, *ad.StartDate)
			assert.Equal(t, day.AddDate(0, 0, duration), *ad.EndDate)
		}
	}
}

func TestApproveInactiveLeavesDatesEmpty(t *testing.T) {
	clock := FixedClock{Date: day}
	ad := newAd(7)

	Approve(ad, clock)

	assert.Equal(t, models.AdStatusApproved, ad.Status)
	assert.Nil(t, ad.StartDate)
	assert.Nil(t, ad.EndDate)
}

func TestApproveIsIdempotent(t *testing.T) {
	ad := newAd(7)
	ad.IsActive = true

	Approve(ad, FixedClock{Date: day})
	firstStart := *ad.StartDate
	firstEnd := *ad.EndDate

	// A later re-approval must not recompute the window.
	Approve(ad, FixedClock{Date: day.AddDate(0, 0, 3)})

	assert.Equal(t, firstStart, *ad.StartDate)
	assert.Equal(t, firstEnd, *ad.EndDate)
}

func TestActivateSchedulesOnlyWhenApproved(t *testing.T) {
	clock := FixedClock{Date: day}

	ad := newAd(3)
	Activate(ad, clock)
	assert.True(t, ad.IsActive)
	assert.Nil(t, ad.StartDate, "unapproved ad must not be scheduled")

	Approve(ad, clock)
	assert.NotNil(t, ad.StartDate)
	assert.Equal(t, day.AddDate(0, 0, 3), *ad.EndDate)
}

func TestDeactivateKeepsWindow(t *testing.T) {
	ad := newAd(7)
	ad.IsActive = true
	Approve(ad, FixedClock{Date: day})
	start := *ad.StartDate

	Deactivate(ad)
	assert.False(t, ad.IsActive)
	assert.Equal(t, start, *ad.StartDate)

	// Reactivating later reuses the stale window instead of recomputing.
	Activate(ad, FixedClock{Date: day.AddDate(0, 0, 10)})
	assert.True(t, ad.IsActive)
	assert.Equal(t, start, *ad.StartDate)
}

func TestRejectLeavesActiveWindowIntact(t *testing.T) {
	ad := newAd(7)
	ad.IsActive = true
	ad.MediaFile = "advertisements/banner.png"
	Approve(ad, FixedClock{Date: day})
	assert.True(t, Visible(ad, day))

	Reject(ad)

	// The window and active flag survive rejection, but visibility drops
	// because it requires approved status.
	assert.True(t, ad.IsActive)
	assert.NotNil(t, ad.StartDate)
	assert.False(t, Visible(ad, day))
}

func TestVisible(t *testing.T) {
	base := func() *models.Advertisement {
		ad := newAd(7)
		ad.IsActive = true
		ad.MediaFile = "advertisements/banner.png"
		Approve(ad, FixedClock{Date: day})
		return ad
	}

	tests := []struct {
		name    string
		mutate  func(*models.Advertisement)
		today   time.Time
		visible bool
	}{
		{"visible on start date", func(ad *models.Advertisement) {}, day, true},
		{"visible mid window", func(ad *models.Advertisement) {}, day.AddDate(0, 0, 3), true},
		{"visible on end date inclusive", func(ad *models.Advertisement) {}, day.AddDate(0, 0, 7), true},
		{"expired the day after", func(ad *models.Advertisement) {}, day.AddDate(0, 0, 8), false},
		{"before window", func(ad *models.Advertisement) {}, day.AddDate(0, 0, -1), false},
		{"not approved", func(ad *models.Advertisement) { ad.Status = models.AdStatusUnderReview }, day, false},
		{"rejected", func(ad *models.Advertisement) { ad.Status = models.AdStatusRejected }, day, false},
		{"inactive", func(ad *models.Advertisement) { ad.IsActive = false }, day, false},
		{"no media", func(ad *models.Advertisement) { ad.MediaFile = "" }, day, false},
		{"no window", func(ad *models.Advertisement) { ad.StartDate = nil; ad.EndDate = nil }, day, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ad := base()
			tt.mutate(ad)
			assert.Equal(t, tt.visible, Visible(ad, tt.today))
		})
	}
}
