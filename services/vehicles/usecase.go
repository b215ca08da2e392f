package vehicles

import (
	"context"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tyrehub/tyrehub/services/vehicles VehicleUC

// VehicleUC represents the customer vehicle usecase interface
type VehicleUC interface {
	AddVehicle(ctx context.Context, principal *models.Principal, vehicle models.UserVehicle) (*models.UserVehicle, error)
	ListVehicles(ctx context.Context, principal *models.Principal) ([]models.UserVehicle, error)
	UpdateVehicle(ctx context.Context, principal *models.Principal, vehicle models.UserVehicle) (*models.UserVehicle, error)
	RemoveVehicle(ctx context.Context, principal *models.Principal, vehicleID int) error
}
