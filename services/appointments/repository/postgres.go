package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

const appointmentColumns = `id, customer_id, shop_id, scheduled_at, status, note, created_at, version`

// CreateAppointment inserts a new appointment in requested state
func (r *AppointmentRepo) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	query := `
		INSERT INTO appointments (customer_id, shop_id, scheduled_at, status, note, created_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, 1)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		appointment.CustomerID, appointment.ShopID,
		appointment.ScheduledAt, appointment.Status,
		appointment.Note, appointment.CreatedAt,
	).Scan(&appointment.ID)
	if err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}

	appointment.Version = 1
	return nil
}

// GetAppointmentByID returns a single appointment
func (r *AppointmentRepo) GetAppointmentByID(ctx context.Context, id int) (*models.Appointment, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = $1`, appointmentColumns)

	var appointment models.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: appointment", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return &appointment, nil
}

// ListAppointmentsByCustomer returns a customer's appointments, soonest first
func (r *AppointmentRepo) ListAppointmentsByCustomer(ctx context.Context, customerID int) ([]models.Appointment, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM appointments WHERE customer_id = $1 ORDER BY scheduled_at`, appointmentColumns)

	var appointments []models.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return appointments, nil
}

// ListAppointmentsByShop returns a shop's appointments, soonest first
func (r *AppointmentRepo) ListAppointmentsByShop(ctx context.Context, shopID int) ([]models.Appointment, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM appointments WHERE shop_id = $1 ORDER BY scheduled_at`, appointmentColumns)

	var appointments []models.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, shopID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return appointments, nil
}

// UpdateStatus moves an appointment to the given state. The version
// predicate rejects concurrent edits.
func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id int, status models.AppointmentStatus, version int64) error {
	query := `
		UPDATE appointments
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, id, version)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: appointment %d was modified concurrently", apperrors.ErrConflict, id)
	}

	return nil
}
