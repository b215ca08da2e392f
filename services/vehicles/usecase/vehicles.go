package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

// AddVehicle registers a vehicle for the calling customer
func (uc *VehicleUC) AddVehicle(ctx context.Context, principal *models.Principal, vehicle models.UserVehicle) (*models.UserVehicle, error) {
	if !principal.IsCustomer() {
		return nil, fmt.Errorf("%w: only customers register vehicles", apperrors.ErrForbidden)
	}
	if vehicle.Plate == "" {
		return nil, apperrors.NewValidationError("plate", "required")
	}

	vehicle.CustomerID = principal.ID()
	vehicle.CreatedAt = time.Now()
	if err := uc.vehicleRepo.CreateVehicle(ctx, &vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return &vehicle, nil
}

// ListVehicles returns the calling customer's vehicles
func (uc *VehicleUC) ListVehicles(ctx context.Context, principal *models.Principal) ([]models.UserVehicle, error) {
	if !principal.IsCustomer() {
		return nil, fmt.Errorf("%w: only customers register vehicles", apperrors.ErrForbidden)
	}
	return uc.vehicleRepo.ListVehiclesByCustomer(ctx, principal.ID())
}

// UpdateVehicle updates a vehicle the caller owns. The version the caller
// last read guards against concurrent edits.
func (uc *VehicleUC) UpdateVehicle(ctx context.Context, principal *models.Principal, vehicle models.UserVehicle) (*models.UserVehicle, error) {
	if !principal.IsCustomer() {
		return nil, fmt.Errorf("%w: only customers register vehicles", apperrors.ErrForbidden)
	}

	existing, err := uc.vehicleRepo.GetVehicleByID(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}
	if existing.CustomerID != principal.ID() {
		return nil, fmt.Errorf("%w: vehicle belongs to another customer", apperrors.ErrForbidden)
	}

	vehicle.CustomerID = principal.ID()
	vehicle.Version = existing.Version
	if err := uc.vehicleRepo.UpdateVehicle(ctx, &vehicle); err != nil {
		return nil, err
	}

	return &vehicle, nil
}

// RemoveVehicle deletes a vehicle the caller owns
func (uc *VehicleUC) RemoveVehicle(ctx context.Context, principal *models.Principal, vehicleID int) error {
	if !principal.IsCustomer() {
		return fmt.Errorf("%w: only customers register vehicles", apperrors.ErrForbidden)
	}
	return uc.vehicleRepo.DeleteVehicle(ctx, vehicleID, principal.ID())
}
