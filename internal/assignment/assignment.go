package assignment

import (
	"errors"

	"yukmarkazi/internal/models"

	"gorm.io/gorm"
)

// Capability is the decision computed for an acting user against one cargo.
type Capability int

const (
	CapabilityNone Capability = iota
	CapabilityClaim
	CapabilityOwner
)

var (
	// ErrForbidden means the actor holds no capability on the cargo.
	ErrForbidden = errors.New("not allowed")
	// ErrAlreadyAssigned means a driver claimed the cargo first.
	ErrAlreadyAssigned = errors.New("cargo already has a driver")
)

// Decide picks the capability for the acting user. Claim eligibility is
// checked before ownership: a driver hitting an unclaimed cargo claims it,
// even when they also own it.
func Decide(cargo *models.Cargo, actorID uint, isDriver bool) Capability {
	if isDriver && cargo.DriverID == nil {
		return CapabilityClaim
	}
	if cargo.CustomerID == actorID {
		return CapabilityOwner
	}
	return CapabilityNone
}

// Claim assigns the driver to the cargo and moves it to EnRoute. This is the
// only path that sets the driver, and it fires at most once per cargo: the
// guarded update keeps two concurrent claims from both succeeding, and the
// loser gets ErrAlreadyAssigned with nothing written.
func Claim(db *gorm.DB, cargo *models.Cargo, driver *models.DriverProfile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Cargo{}).
			Where("id = ? AND driver_id IS NULL", cargo.ID).
			Updates(map[string]interface{}{
				"driver_id": driver.ID,
				"status":    models.CargoStatusEnRoute,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyAssigned
		}
		cargo.DriverID = &driver.ID
		cargo.Driver = driver
		cargo.Status = models.CargoStatusEnRoute
		return nil
	})
}
