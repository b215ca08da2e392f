package vehicles

import (
	"context"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tyrehub/tyrehub/services/vehicles VehicleRepo

// VehicleRepo represents the vehicle store interface
type VehicleRepo interface {
	CreateVehicle(ctx context.Context, vehicle *models.UserVehicle) error
	GetVehicleByID(ctx context.Context, id int) (*models.UserVehicle, error)
	ListVehiclesByCustomer(ctx context.Context, customerID int) ([]models.UserVehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *models.UserVehicle) error
	DeleteVehicle(ctx context.Context, id, customerID int) error
}
