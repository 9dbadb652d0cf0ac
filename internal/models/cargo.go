package models

import "gorm.io/gorm"

type VehicleType string

const (
	VehicleBortli       VehicleType = "Bortli"
	VehicleTentli       VehicleType = "Tentli"
	VehicleRefrigatorli VehicleType = "Refrigatorli"
	VehicleSamosval     VehicleType = "Samosval"
	VehicleShalanda     VehicleType = "Shalanda"
	VehicleKonteyner    VehicleType = "Konteyner"
	VehiclePloshadka    VehicleType = "Ploshadka"
)

type CargoStatus string

const (
	CargoStatusInProgress CargoStatus = "InProgress"
	CargoStatusEnRoute    CargoStatus = "EnRoute"
	CargoStatusDelivered  CargoStatus = "Delivered"
)

// ValidVehicleType reports whether v is one of the seven supported bodies.
func ValidVehicleType(v VehicleType) bool {
	switch v {
	case VehicleBortli, VehicleTentli, VehicleRefrigatorli, VehicleSamosval,
		VehicleShalanda, VehicleKonteyner, VehiclePloshadka:
		return true
	}
	return false
}

func ValidCargoStatus(s CargoStatus) bool {
	switch s {
	case CargoStatusInProgress, CargoStatusEnRoute, CargoStatusDelivered:
		return true
	}
	return false
}

type Cargo struct {
	gorm.Model
	CustomerID  uint           `json:"customerId" gorm:"column:customer_id;not null"`
	Customer    User           `json:"customer" gorm:"foreignKey:CustomerID"`
	DriverID    *uint          `json:"driverId" gorm:"column:driver_id"`
	Driver      *DriverProfile `json:"driver" gorm:"foreignKey:DriverID"`
	Name        string         `json:"name" gorm:"column:name;not null"`
	Weight      float64        `json:"weight" gorm:"column:weight;not null"`
	Origin      string         `json:"origin" gorm:"column:origin;not null"`
	Destination string         `json:"destination" gorm:"column:destination;not null"`
	VehicleType VehicleType    `json:"vehicleType" gorm:"column:vehicle_type;default:Bortli"`
	Status      CargoStatus    `json:"status" gorm:"column:status;default:InProgress"`
	Price       *float64       `json:"price" gorm:"column:price"`
	Description string         `json:"description" gorm:"column:description"`
	Reviews     []CargoReview  `json:"reviews" gorm:"foreignKey:CargoID"`
}

func (Cargo) TableName() string {
	return "cargos"
}

type CargoReview struct {
	gorm.Model
	CargoID    uint   `json:"cargoId" gorm:"column:cargo_id;not null"`
	CustomerID uint   `json:"customerId" gorm:"column:customer_id;not null"`
	Customer   User   `json:"customer" gorm:"foreignKey:CustomerID"`
	Comment    string `json:"comment" gorm:"column:comment;not null"`
	Stars      int    `json:"stars" gorm:"column:stars;default:0"`
}

func (CargoReview) TableName() string {
	return "cargo_reviews"
}
