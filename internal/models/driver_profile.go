package models

import "gorm.io/gorm"

// DriverProfile is created empty for every registered user; drivers fill it
// in before claiming cargos.
type DriverProfile struct {
	gorm.Model
	UserID          uint    `json:"userId" gorm:"column:user_id;uniqueIndex;not null"`
	User            User    `json:"user" gorm:"foreignKey:UserID"`
	ProfilePicture  string  `json:"profilePicture" gorm:"column:profile_picture"`
	VehicleType     string  `json:"vehicleType" gorm:"column:vehicle_type"`
	LicenseType     string  `json:"licenseType" gorm:"column:license_type"`
	VehicleCapacity float64 `json:"vehicleCapacity" gorm:"column:vehicle_capacity"`
	Experience      int     `json:"experience" gorm:"column:experience"`
}

func (DriverProfile) TableName() string {
	return "driver_profiles"
}
