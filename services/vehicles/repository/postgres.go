package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

const vehicleColumns = `id, customer_id, plate, brand, model, vehicle_type, created_at, version`

// CreateVehicle inserts a new vehicle record
func (r *VehicleRepo) CreateVehicle(ctx context.Context, vehicle *models.UserVehicle) error {
	query := `
		INSERT INTO user_vehicles (customer_id, plate, brand, model, vehicle_type, created_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, 1)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		vehicle.CustomerID, vehicle.Plate, vehicle.Brand,
		vehicle.Model, vehicle.VehicleType, vehicle.CreatedAt,
	).Scan(&vehicle.ID)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	vehicle.Version = 1
	return nil
}

// GetVehicleByID returns a single vehicle record
func (r *VehicleRepo) GetVehicleByID(ctx context.Context, id int) (*models.UserVehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM user_vehicles WHERE id = $1`, vehicleColumns)

	var vehicle models.UserVehicle
	if err := r.db.GetContext(ctx, &vehicle, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: vehicle", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

// ListVehiclesByCustomer returns a customer's vehicles
func (r *VehicleRepo) ListVehiclesByCustomer(ctx context.Context, customerID int) ([]models.UserVehicle, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM user_vehicles WHERE customer_id = $1 ORDER BY id`, vehicleColumns)

	var vehicles []models.UserVehicle
	if err := r.db.SelectContext(ctx, &vehicles, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vehicles, nil
}

// UpdateVehicle updates a vehicle record with an optimistic version check
func (r *VehicleRepo) UpdateVehicle(ctx context.Context, vehicle *models.UserVehicle) error {
	query := `
		UPDATE user_vehicles
		SET plate = $1, brand = $2, model = $3, vehicle_type = $4, version = version + 1
		WHERE id = $5 AND customer_id = $6 AND version = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		vehicle.Plate, vehicle.Brand, vehicle.Model, vehicle.VehicleType,
		vehicle.ID, vehicle.CustomerID, vehicle.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: vehicle %d", apperrors.ErrConflict, vehicle.ID)
	}

	vehicle.Version++
	return nil
}

// DeleteVehicle removes a vehicle owned by the given customer
func (r *VehicleRepo) DeleteVehicle(ctx context.Context, id, customerID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM user_vehicles WHERE id = $1 AND customer_id = $2`, id, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: vehicle", apperrors.ErrNotFound)
	}

	return nil
}
