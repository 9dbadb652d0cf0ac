package models

import (
	"time"

	"gorm.io/gorm"
)

type AdStatus string

const (
	AdStatusUnderReview AdStatus = "UnderReview"
	AdStatusApproved    AdStatus = "Approved"
	AdStatusRejected    AdStatus = "Rejected"
)

type AdType string

const (
	AdTypeNative       AdType = "Native"
	AdTypeBoost        AdType = "Boost"
	AdTypeSuperTop     AdType = "SuperTop"
	AdTypeSplash       AdType = "Splash"
	AdTypeInterstitial AdType = "Interstitial"
	AdTypeTop          AdType = "Top"
	AdTypeRaise        AdType = "Raise"
	AdTypeSpecial      AdType = "Special"
)

func ValidAdType(t AdType) bool {
	switch t {
	case AdTypeNative, AdTypeBoost, AdTypeSuperTop, AdTypeSplash,
		AdTypeInterstitial, AdTypeTop, AdTypeRaise, AdTypeSpecial:
		return true
	}
	return false
}

func ValidAdStatus(s AdStatus) bool {
	switch s {
	case AdStatusUnderReview, AdStatusApproved, AdStatusRejected:
		return true
	}
	return false
}

// ValidAdDuration accepts the fixed set of bookable run lengths, in days.
func ValidAdDuration(days int) bool {
	switch days {
	case 1, 3, 7, 14, 30:
		return true
	}
	return false
}

// Advertisement goes through request -> admin review -> activation. The
// media file, window dates and notes are admin-supplied only.
type Advertisement struct {
	gorm.Model
	CompanyName  string     `json:"companyName" gorm:"column:company_name;not null"`
	AdType       AdType     `json:"adType" gorm:"column:ad_type;not null"`
	DurationDays int        `json:"durationDays" gorm:"column:duration_days;not null"`
	PhoneNumber  string     `json:"phoneNumber" gorm:"column:phone_number;not null"`
	Description  string     `json:"description" gorm:"column:description;not null"`
	Status       AdStatus   `json:"status" gorm:"column:status;default:UnderReview"`
	IsActive     bool       `json:"isActive" gorm:"column:is_active;default:false"`
	MediaFile    string     `json:"mediaFile" gorm:"column:media_file"`
	StartDate    *time.Time `json:"startDate" gorm:"column:start_date;type:date"`
	EndDate      *time.Time `json:"endDate" gorm:"column:end_date;type:date"`
	AdminNotes   string     `json:"-" gorm:"column:admin_notes"`
}

func (Advertisement) TableName() string {
	return "advertisements"
}
