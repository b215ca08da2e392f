package appointments

import (
	"context"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tyrehub/tyrehub/services/appointments AppointmentUC

// AppointmentUC represents the appointment booking usecase interface
type AppointmentUC interface {
	// BookAppointment books a visit for the calling customer. The slot
	// must fall within the shop's operating hours.
	BookAppointment(ctx context.Context, principal *models.Principal, input models.CreateAppointmentInput) (*models.Appointment, error)

	ListAppointments(ctx context.Context, principal *models.Principal) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, principal *models.Principal, id int) (*models.Appointment, error)

	// ConfirmAppointment is shop-only; CancelAppointment is allowed to
	// either party involved
	ConfirmAppointment(ctx context.Context, principal *models.Principal, id int) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, principal *models.Principal, id int) (*models.Appointment, error)
}
