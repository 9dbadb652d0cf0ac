package assignment

import (
	"encoding/json"
	"fmt"

	"yukmarkazi/internal/models"
)

// Fields a customer may change on their own cargo. The driver reference is
// deliberately absent: it is only ever set through Claim.
var editableCargoFields = map[string]bool{
	"name":        true,
	"weight":      true,
	"origin":      true,
	"destination": true,
	"vehicleType": true,
	"price":       true,
	"description": true,
	"status":      true,
}

// ApplyPatch applies a customer's partial update to the cargo. Unknown
// fields and invalid enum values are rejected before anything is mutated.
func ApplyPatch(cargo *models.Cargo, payload map[string]json.RawMessage) error {
	for key := range payload {
		if !editableCargoFields[key] {
			return fmt.Errorf("field %q is not editable", key)
		}
	}

	var patch struct {
		Name        *string             `json:"name"`
		Weight      *float64            `json:"weight"`
		Origin      *string             `json:"origin"`
		Destination *string             `json:"destination"`
		VehicleType *models.VehicleType `json:"vehicleType"`
		Price       *float64            `json:"price"`
		Description *string             `json:"description"`
		Status      *models.CargoStatus `json:"status"`
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, &patch); err != nil {
		return err
	}

	if patch.VehicleType != nil && !models.ValidVehicleType(*patch.VehicleType) {
		return fmt.Errorf("invalid vehicle type %q", *patch.VehicleType)
	}
	if patch.Status != nil && !models.ValidCargoStatus(*patch.Status) {
		return fmt.Errorf("invalid status %q", *patch.Status)
	}

	if patch.Name != nil {
		cargo.Name = *patch.Name
	}
	if patch.Weight != nil {
		cargo.Weight = *patch.Weight
	}
	if patch.Origin != nil {
		cargo.Origin = *patch.Origin
	}
	if patch.Destination != nil {
		cargo.Destination = *patch.Destination
	}
	if patch.VehicleType != nil {
		cargo.VehicleType = *patch.VehicleType
	}
	if patch.Price != nil {
		cargo.Price = patch.Price
	}
	if patch.Description != nil {
		cargo.Description = *patch.Description
	}
	if patch.Status != nil {
		cargo.Status = *patch.Status
	}
	return nil
}
