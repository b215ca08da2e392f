package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

const hourLayout = "15:04"

// BookAppointment books a visit for the calling customer. The slot must be
// in the future and fall within the shop's operating hours.
func (uc *AppointmentUC) BookAppointment(ctx context.Context, principal *models.Principal, input models.CreateAppointmentInput) (*models.Appointment, error) {
	if !principal.IsCustomer() {
		return nil, fmt.Errorf("%w: only customers book appointments", apperrors.ErrForbidden)
	}
	if input.ScheduledAt.IsZero() {
		return nil, apperrors.NewValidationError("scheduled_at", "required")
	}
	if input.ScheduledAt.Before(time.Now()) {
		return nil, apperrors.NewValidationError("scheduled_at", "must be in the future")
	}

	shop, err := uc.shops.GetShopByID(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if err := validateOperatingHours(shop, input.ScheduledAt); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		CustomerID:  principal.ID(),
		ShopID:      shop.ID,
		ScheduledAt: input.ScheduledAt,
		Status:      models.AppointmentStatusRequested,
		Note:        input.Note,
		CreatedAt:   time.Now(),
	}
	if err := uc.appointmentRepo.CreateAppointment(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	uc.publishEvent(ctx, appointment)
	return appointment, nil
}

// validateOperatingHours rejects a slot outside the shop's opening window.
// Shops without stored hours accept any time of day.
func validateOperatingHours(shop *models.TireShop, scheduledAt time.Time) error {
	if shop.OpeningHour == "" || shop.ClosingHour == "" {
		return nil
	}

	opening, err := time.Parse(hourLayout, shop.OpeningHour)
	if err != nil {
		return nil
	}
	closing, err := time.Parse(hourLayout, shop.ClosingHour)
	if err != nil {
		return nil
	}

	slot := scheduledAt.Hour()*60 + scheduledAt.Minute()
	opensAt := opening.Hour()*60 + opening.Minute()
	closesAt := closing.Hour()*60 + closing.Minute()

	if slot < opensAt || slot >= closesAt {
		return apperrors.NewValidationError("scheduled_at",
			fmt.Sprintf("shop is open %s-%s", shop.OpeningHour, shop.ClosingHour))
	}
	return nil
}

// ListAppointments returns the appointments visible to the caller:
// customers see their own bookings, shops the ones booked with them.
func (uc *AppointmentUC) ListAppointments(ctx context.Context, principal *models.Principal) ([]models.Appointment, error) {
	if principal.IsShop() {
		return uc.appointmentRepo.ListAppointmentsByShop(ctx, principal.ID())
	}
	return uc.appointmentRepo.ListAppointmentsByCustomer(ctx, principal.ID())
}

// GetAppointment returns one appointment if the caller is a party to it
func (uc *AppointmentUC) GetAppointment(ctx context.Context, principal *models.Principal, id int) (*models.Appointment, error) {
	appointment, err := uc.appointmentRepo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isParty(principal, appointment) {
		return nil, fmt.Errorf("%w: appointment involves another party", apperrors.ErrForbidden)
	}
	return appointment, nil
}

// ConfirmAppointment moves a requested appointment to confirmed. Only the
// booked shop may confirm.
func (uc *AppointmentUC) ConfirmAppointment(ctx context.Context, principal *models.Principal, id int) (*models.Appointment, error) {
	appointment, err := uc.appointmentRepo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.IsShop() || appointment.ShopID != principal.ID() {
		return nil, fmt.Errorf("%w: only the booked shop confirms", apperrors.ErrForbidden)
	}
	if appointment.Status != models.AppointmentStatusRequested {
		return nil, fmt.Errorf("%w: appointment is %s, only requested appointments can be confirmed",
			apperrors.ErrInvalidTransition, appointment.Status)
	}

	if err := uc.appointmentRepo.UpdateStatus(ctx, id, models.AppointmentStatusConfirmed, appointment.Version); err != nil {
		return nil, err
	}

	updated, err := uc.appointmentRepo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.publishEvent(ctx, updated)
	return updated, nil
}

// CancelAppointment cancels a not-yet-cancelled appointment. Either party
// may cancel.
func (uc *AppointmentUC) CancelAppointment(ctx context.Context, principal *models.Principal, id int) (*models.Appointment, error) {
	appointment, err := uc.appointmentRepo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isParty(principal, appointment) {
		return nil, fmt.Errorf("%w: appointment involves another party", apperrors.ErrForbidden)
	}
	if appointment.Status == models.AppointmentStatusCancelled {
		return nil, fmt.Errorf("%w: appointment is already cancelled", apperrors.ErrInvalidTransition)
	}

	if err := uc.appointmentRepo.UpdateStatus(ctx, id, models.AppointmentStatusCancelled, appointment.Version); err != nil {
		return nil, err
	}

	updated, err := uc.appointmentRepo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.publishEvent(ctx, updated)
	return updated, nil
}

func isParty(principal *models.Principal, appointment *models.Appointment) bool {
	if principal.IsCustomer() {
		return appointment.CustomerID == principal.ID()
	}
	return appointment.ShopID == principal.ID()
}

// publishEvent emits an appointment state change. Delivery failures are
// logged, never surfaced; the booking itself already committed.
func (uc *AppointmentUC) publishEvent(ctx context.Context, appointment *models.Appointment) {
	event := models.AppointmentEvent{
		ID:            uuid.New().String(),
		AppointmentID: appointment.ID,
		CustomerID:    appointment.CustomerID,
		ShopID:        appointment.ShopID,
		Status:        appointment.Status,
		ScheduledAt:   appointment.ScheduledAt,
		OccurredAt:    time.Now(),
	}
	if err := uc.events.PublishEvent(ctx, event); err != nil {
		uc.log.WithError(err).WithFields(logrus.Fields{
			"appointment_id": appointment.ID,
			"status":         appointment.Status,
		}).Error("failed to publish appointment event")
	}
}
