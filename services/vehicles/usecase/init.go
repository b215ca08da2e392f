package usecase

import (
	"github.com/tyrehub/tyrehub/services/vehicles"
)

// VehicleUC implements the customer vehicle usecase interface
type VehicleUC struct {
	vehicleRepo vehicles.VehicleRepo
}

// NewVehicleUC creates a new vehicle usecase instance
func NewVehicleUC(vehicleRepo vehicles.VehicleRepo) *VehicleUC {
	return &VehicleUC{vehicleRepo: vehicleRepo}
}
