package models

import "time"

// AppointmentStatus is the state of a booked appointment
type AppointmentStatus string

const (
	AppointmentStatusRequested AppointmentStatus = "REQUESTED"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// Appointment is a scheduled visit of a customer to a shop
type Appointment struct {
	ID          int               `json:"id" db:"id"`
	CustomerID  int               `json:"customer_id" db:"customer_id"`
	ShopID      int               `json:"shop_id" db:"shop_id"`
	ScheduledAt time.Time         `json:"scheduled_at" db:"scheduled_at"`
	Status      AppointmentStatus `json:"status" db:"status"`
	Note        string            `json:"note" db:"note"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	Version     int64             `json:"-" db:"version"`
}

// CreateAppointmentInput is the payload for booking an appointment
type CreateAppointmentInput struct {
	ShopID      int       `json:"shop_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Note        string    `json:"note"`
}

// AppointmentEvent is published when an appointment changes state
type AppointmentEvent struct {
	ID            string            `json:"id"`
	AppointmentID int               `json:"appointment_id"`
	CustomerID    int               `json:"customer_id"`
	ShopID        int               `json:"shop_id"`
	Status        AppointmentStatus `json:"status"`
	ScheduledAt   time.Time         `json:"scheduled_at"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
