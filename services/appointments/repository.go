package appointments

import (
	"context"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tyrehub/tyrehub/services/appointments AppointmentRepo,EventGW

// AppointmentRepo represents the appointment store interface
type AppointmentRepo interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) error
	GetAppointmentByID(ctx context.Context, id int) (*models.Appointment, error)
	ListAppointmentsByCustomer(ctx context.Context, customerID int) ([]models.Appointment, error)
	ListAppointmentsByShop(ctx context.Context, shopID int) ([]models.Appointment, error)

	// UpdateStatus moves an appointment to the given state with an
	// optimistic version check
	UpdateStatus(ctx context.Context, id int, status models.AppointmentStatus, version int64) error
}

// ShopDirectory is the read-only view of shops the booking flow needs.
// The shops repository satisfies it.
type ShopDirectory interface {
	GetShopByID(ctx context.Context, id int) (*models.TireShop, error)
}

// EventGW represents the appointment event publisher interface
type EventGW interface {
	PublishEvent(ctx context.Context, event models.AppointmentEvent) error
}
