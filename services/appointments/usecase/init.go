package usecase

import (
	"github.com/tyrehub/tyrehub/internal/pkg/logger"
	"github.com/tyrehub/tyrehub/services/appointments"
)

// AppointmentUC implements the appointment booking usecase interface
type AppointmentUC struct {
	appointmentRepo appointments.AppointmentRepo
	shops           appointments.ShopDirectory
	events          appointments.EventGW
	log             *logger.AppLogger
}

// NewAppointmentUC creates a new appointment usecase instance
func NewAppointmentUC(
	appointmentRepo appointments.AppointmentRepo,
	shops appointments.ShopDirectory,
	events appointments.EventGW,
	log *logger.AppLogger,
) *AppointmentUC {
	return &AppointmentUC{
		appointmentRepo: appointmentRepo,
		shops:           shops,
		events:          events,
		log:             log,
	}
}
